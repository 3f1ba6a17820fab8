// FilePath: api/resources/api.resource.records.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RecordHandlers encapsulates the record-related HTTP handlers
type RecordHandlers struct {
	beeservice *beeservice.BeeService
}

// @Summary Save a record
// @Description Insert or update one sensor record of a hive
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Hive ID"
// @Param record body models.Record true "Record"
// @Success 201 {object} models.Record
// @Failure 400 {object} errors.StoreError
// @Router /hives/{id}/records [post]
func (h *RecordHandlers) SaveRecord(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	hiveID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid request body", err))
		return
	}

	if err := h.beeservice.SaveRecord(r.Context(), hiveID, &record); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, record)
}

// @Summary Save a batch of records
// @Description Store records in one batch; ids are assigned as a
// @Description contiguous block in input order
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Hive ID"
// @Param records body []models.Record true "Records"
// @Success 201 {array} models.Record
// @Failure 400 {object} errors.StoreError
// @Router /hives/{id}/records/batch [post]
func (h *RecordHandlers) SaveRecords(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	hiveID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var records []*models.Record
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid request body", err))
		return
	}

	if err := h.beeservice.SaveRecords(r.Context(), hiveID, records); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, records)
}
