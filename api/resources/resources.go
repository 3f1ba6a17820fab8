// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Apiaries   *ApiaryHandlers
	Hives      *HiveHandlers
	Records    *RecordHandlers
	Recordings *RecordingHandlers
	Admin      *AdminHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *beeservice.BeeService) *Resources {
	return &Resources{
		Apiaries:   &ApiaryHandlers{beeservice: svc},
		Hives:      &HiveHandlers{beeservice: svc},
		Records:    &RecordHandlers{beeservice: svc},
		Recordings: &RecordingHandlers{beeservice: svc},
		Admin:      &AdminHandlers{beeservice: svc},
	}
}

// HealthCheck reports service liveness.
func (r *Resources) HealthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

// Helper functions

// respondWithError delivers a failure outcome. Service errors carry
// their own HTTP code; anything else is an operation failure.
func respondWithError(w http.ResponseWriter, requestID string, err error) {
	storeErr, ok := err.(*errors.StoreError)
	if !ok {
		storeErr = errors.NewOperationFailureError("operation failed", err)
	}
	storeErr = storeErr.WithRequestID(requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(storeErr.Code)
	json.NewEncoder(w).Encode(storeErr)
	nuts.L.Errorf("[API] %s", storeErr.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondNotFound delivers the empty outcome of a lookup: absence is a
// result here, not an error.
func respondNotFound(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusNotFound, nil)
}
