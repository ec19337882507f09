package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// EngagementHandler serves saved-leads or prospection-leads; one instance
// per collection. Creation is unconditional (no duplicate check, no lead
// existence check) and deletion matches every record for a leadId.
type EngagementHandler struct {
	Repo  entity.EngagementRepositoryInterface
	Path  string
	Label string
}

func NewSavedLeadHandler(repo entity.EngagementRepositoryInterface) *EngagementHandler {
	return &EngagementHandler{Repo: repo, Path: "saved-leads", Label: "Saved lead"}
}

func NewProspectionLeadHandler(repo entity.EngagementRepositoryInterface) *EngagementHandler {
	return &EngagementHandler{Repo: repo, Path: "prospection-leads", Label: "Prospection lead"}
}

func (h *EngagementHandler) Mount(r chi.Router) {
	path := "/" + h.Path
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Delete(path+"/{leadId}", h.DeleteByLead)
}

func (h *EngagementHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("[%s] list failed: %v", h.Path, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createEngagementRequest struct {
	LeadID string `json:"leadId"`
	UserID string `json:"userId"`
}

func (h *EngagementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		req.UserID = entity.DefaultUserID
	}

	record := &entity.Engagement{
		ID:        uuid.New().String(),
		LeadID:    req.LeadID,
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.Repo.Create(r.Context(), record); err != nil {
		log.Printf("[%s] create failed: %v", h.Path, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *EngagementHandler) DeleteByLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	deleted, err := h.Repo.DeleteByLeadID(r.Context(), leadID)
	if err != nil {
		log.Printf("[%s] delete by lead %s failed: %v", h.Path, leadID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": h.Label + " removed successfully",
		"deleted": deleted > 0,
	})
}
