// FilePath: api/resources/api.resource.admin.go
package resources

import (
	"net/http"

	"github.com/gobees/hub/internal/beeservice"
	nuts "github.com/vaudience/go-nuts"
)

// AdminHandlers encapsulates whole-store maintenance handlers
type AdminHandlers struct {
	beeservice *beeservice.BeeService
}

// @Summary Wipe the store
// @Description Delete every apiary, hive and record
// @Tags admin
// @Success 204 "No Content"
// @Failure 500 {object} errors.StoreError
// @Router /data [delete]
func (h *AdminHandlers) DeleteEverything(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if err := h.beeservice.DeleteEverything(r.Context()); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
