package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
	"github.com/permitwatch/lead-portal/internal/infra/http/middleware"
)

// listLimit caps GET /leads. The portal holds at most a few hundred leads;
// the cap is a guard, not pagination.
const listLimit = 1000

type LeadHandler struct {
	Leads entity.LeadRepositoryInterface
}

func NewLeadHandler(repo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{Leads: repo}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context(), listLimit)
	if err != nil {
		log.Printf("[LEADS] list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Leads.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		log.Printf("[LEADS] get %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	lead, err := h.Leads.Create(r.Context(), uuid.New().String(), fields, time.Now().UTC())
	if err != nil {
		log.Printf("[LEADS] create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	lead, err := h.Leads.Update(r.Context(), id, fields, time.Now().UTC())
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		log.Printf("[LEADS] update %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Leads.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		log.Printf("[LEADS] delete %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}

// decodeFields reads the schema-less lead payload. Generated keys are
// stripped so a client cannot pick its own id or forge timestamps.
func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	// A literal null body decodes into a nil map; treat it as an empty
	// object.
	if fields == nil {
		fields = map[string]any{}
	}
	delete(fields, "id")
	delete(fields, "createdAt")
	delete(fields, "updatedAt")
	return fields, true
}
