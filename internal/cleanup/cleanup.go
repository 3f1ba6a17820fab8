// FilePath: internal/cleanup/cleanup.go

// Package cleanup publishes deletion events after cascading deletes
// commit, so observers (logging, cache invalidation hooks) never see a
// half-finished cascade.
package cleanup

import (
	nuts "github.com/vaudience/go-nuts"
)

// Event names emitted after a successful cascade.
const (
	EventApiaryDeleted    = "apiary.deleted"
	EventHiveDeleted      = "hive.deleted"
	EventRecordingDeleted = "recording.deleted"
	EventStoreWiped       = "store.wiped"
)

// Notifier fans deletion events out to registered handlers.
type Notifier struct {
	events *nuts.EventEmitter
}

// New creates a new Notifier
func New() *Notifier {
	return &Notifier{events: nuts.NewEventEmitter()}
}

// Emit publishes an event. The id is the deleted entity's id, or a
// descriptive label for whole-store events.
func (n *Notifier) Emit(event string, id string) {
	n.events.Emit(event, id)
}

// OnCleanup registers a callback for cleanup events
func (n *Notifier) OnCleanup(event string, handler func(id string)) {
	n.events.On(event, "cleanup_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}
