// FilePath: api/resources/api.resource.recordings.go
package resources

import (
	"net/http"
	"time"

	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
)

var queryDecoder = schema.NewDecoder()

// RecordingHandlers encapsulates the recording-related HTTP handlers
type RecordingHandlers struct {
	beeservice *beeservice.BeeService
}

// @Summary Get a recording by date range
// @Description Get the hive's records between start and end day, both
// @Description inclusive, as a single recording labeled with start
// @Tags recordings
// @Produce json
// @Param id path int true "Hive ID"
// @Param start query string true "Start day (YYYY-MM-DD)"
// @Param end query string true "End day (YYYY-MM-DD)"
// @Success 200 {object} models.Recording
// @Failure 400 {object} errors.StoreError
// @Failure 503 {object} errors.StoreError
// @Router /hives/{id}/recordings [get]
func (h *RecordingHandlers) GetRecording(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	hiveID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var filter models.RecordingFilter
	if err := queryDecoder.Decode(&filter, r.URL.Query()); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid query parameters", err))
		return
	}
	start, end, err := filter.Range()
	if err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid date format", err))
		return
	}

	recording, err := h.beeservice.GetRecording(r.Context(), hiveID, start, end)
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, recording)
}

// @Summary Delete a recording
// @Description Delete every record of the hive on the given day
// @Tags recordings
// @Param id path int true "Hive ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} errors.StoreError
// @Failure 500 {object} errors.StoreError
// @Router /hives/{id}/recordings/{date} [delete]
func (h *RecordingHandlers) DeleteRecording(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	hiveID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	date, err := time.Parse(models.DateLayout, mux.Vars(r)["date"])
	if err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid date format", err))
		return
	}

	err = h.beeservice.DeleteRecording(r.Context(), hiveID, models.Recording{Date: date})
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
