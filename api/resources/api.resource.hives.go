// FilePath: api/resources/api.resource.hives.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// HiveHandlers encapsulates the hive-related HTTP handlers
type HiveHandlers struct {
	beeservice *beeservice.BeeService
}

// @Summary List hives of an apiary
// @Tags hives
// @Produce json
// @Param id path int true "Apiary ID"
// @Success 200 {array} models.Hive
// @Router /apiaries/{id}/hives [get]
func (h *HiveHandlers) ListHives(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	apiaryID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	hives, err := h.beeservice.ListHives(r.Context(), apiaryID)
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hives)
}

// @Summary Get a hive by ID
// @Description Get a hive; with recordings=true its records come
// @Description grouped into one recording per calendar day
// @Tags hives
// @Produce json
// @Param id path int true "Hive ID"
// @Param recordings query bool false "Attach day-grouped recordings"
// @Success 200 {object} models.Hive
// @Failure 404 "Not Found"
// @Failure 503 {object} errors.StoreError
// @Router /hives/{id} [get]
func (h *HiveHandlers) GetHive(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if r.URL.Query().Get("recordings") == "true" {
		hive, err := h.beeservice.GetHiveWithRecordings(r.Context(), id)
		if err != nil {
			respondWithError(w, requestID, err)
			return
		}
		respondWithJSON(w, http.StatusOK, hive)
		return
	}

	hive, err := h.beeservice.GetHive(r.Context(), id)
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}
	if hive == nil {
		respondNotFound(w)
		return
	}

	respondWithJSON(w, http.StatusOK, hive)
}

// @Summary Save a hive
// @Description Insert or update a hive and link it to the apiary
// @Tags hives
// @Accept json
// @Produce json
// @Param id path int true "Apiary ID"
// @Param hive body models.Hive true "Hive details"
// @Success 201 {object} models.Hive
// @Failure 400 {object} errors.StoreError
// @Router /apiaries/{id}/hives [post]
func (h *HiveHandlers) SaveHive(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	apiaryID, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var hive models.Hive
	if err := json.NewDecoder(r.Body).Decode(&hive); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid request body", err))
		return
	}

	if err := h.beeservice.SaveHive(r.Context(), apiaryID, &hive); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, hive)
}

// @Summary Delete a hive
// @Description Delete the hive and all its records
// @Tags hives
// @Param id path int true "Hive ID"
// @Success 204 "No Content"
// @Failure 500 {object} errors.StoreError
// @Router /hives/{id} [delete]
func (h *HiveHandlers) DeleteHive(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.beeservice.DeleteHive(r.Context(), id); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Next hive id
// @Tags hives
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /hives/next-id [get]
func (h *HiveHandlers) NextHiveID(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	next, err := h.beeservice.NextHiveID(r.Context())
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"next_id": next})
}
