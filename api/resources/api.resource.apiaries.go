// FilePath: api/resources/api.resource.apiaries.go
package resources

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// ApiaryHandlers encapsulates the apiary-related HTTP handlers
type ApiaryHandlers struct {
	beeservice *beeservice.BeeService
}

// @Summary List apiaries
// @Description Get all apiaries
// @Tags apiaries
// @Produce json
// @Success 200 {array} models.Apiary
// @Router /apiaries [get]
func (h *ApiaryHandlers) ListApiaries(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	apiaries, err := h.beeservice.ListApiaries(r.Context())
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, apiaries)
}

// @Summary Get an apiary by ID
// @Description Get an apiary with its hives
// @Tags apiaries
// @Produce json
// @Param id path int true "Apiary ID"
// @Success 200 {object} models.Apiary
// @Failure 404 "Not Found"
// @Router /apiaries/{id} [get]
func (h *ApiaryHandlers) GetApiary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	apiary, err := h.beeservice.GetApiary(r.Context(), id)
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}
	if apiary == nil {
		respondNotFound(w)
		return
	}

	respondWithJSON(w, http.StatusOK, apiary)
}

// @Summary Save an apiary
// @Description Insert a new apiary or update an existing one by id
// @Tags apiaries
// @Accept json
// @Produce json
// @Param apiary body models.Apiary true "Apiary details"
// @Success 201 {object} models.Apiary
// @Failure 400 {object} errors.StoreError
// @Router /apiaries [post]
func (h *ApiaryHandlers) SaveApiary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var apiary models.Apiary
	if err := json.NewDecoder(r.Body).Decode(&apiary); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid request body", err))
		return
	}

	if err := h.beeservice.SaveApiary(r.Context(), &apiary); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, apiary)
}

// @Summary Update an apiary
// @Description Update the apiary with the id from the path
// @Tags apiaries
// @Accept json
// @Produce json
// @Param id path int true "Apiary ID"
// @Param apiary body models.Apiary true "Apiary details"
// @Success 200 {object} models.Apiary
// @Failure 400 {object} errors.StoreError
// @Router /apiaries/{id} [put]
func (h *ApiaryHandlers) SaveApiaryByID(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var apiary models.Apiary
	if err := json.NewDecoder(r.Body).Decode(&apiary); err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid request body", err))
		return
	}

	apiary.ID = id
	if err := h.beeservice.SaveApiary(r.Context(), &apiary); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, apiary)
}

// @Summary Delete an apiary
// @Description Delete the apiary, its hives and their records
// @Tags apiaries
// @Produce json
// @Param id path int true "Apiary ID"
// @Success 204 "No Content"
// @Failure 500 {object} errors.StoreError
// @Router /apiaries/{id} [delete]
func (h *ApiaryHandlers) DeleteApiary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.beeservice.DeleteApiary(r.Context(), id); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete all apiaries
// @Description Delete every apiary with full cascade
// @Tags apiaries
// @Success 204 "No Content"
// @Router /apiaries [delete]
func (h *ApiaryHandlers) DeleteAllApiaries(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if err := h.beeservice.DeleteAllApiaries(r.Context()); err != nil {
		respondWithError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Next apiary id
// @Description Get the next free apiary id (max+1 hint)
// @Tags apiaries
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /apiaries/next-id [get]
func (h *ApiaryHandlers) NextApiaryID(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	next, err := h.beeservice.NextApiaryID(r.Context())
	if err != nil {
		respondWithError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"next_id": next})
}

// pathID extracts the numeric {id} path variable.
func pathID(w http.ResponseWriter, r *http.Request, requestID string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, requestID, errors.NewValidationError("invalid id", err))
		return 0, false
	}
	return id, true
}
