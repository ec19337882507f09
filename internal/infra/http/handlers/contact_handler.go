package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// contactFeedLimit caps the activity feed returned by GET /contact-history.
const contactFeedLimit = 100

type ContactHandler struct {
	Contacts entity.ContactRepositoryInterface
}

func NewContactHandler(repo entity.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{Contacts: repo}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Contacts.List(r.Context(), contactFeedLimit)
	if err != nil {
		log.Printf("[CONTACT] list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type createContactRequest struct {
	LeadID    string `json:"leadId"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	UserID    string `json:"userId"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Status == "" {
		req.Status = "sent"
	}
	if req.UserID == "" {
		req.UserID = entity.DefaultUserID
	}

	record := &entity.ContactRecord{
		ID:        uuid.New().String(),
		LeadID:    req.LeadID,
		Type:      req.Type,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    req.Status,
		Timestamp: time.Now().UTC(),
		UserID:    req.UserID,
	}

	if err := h.Contacts.Create(r.Context(), record); err != nil {
		log.Printf("[CONTACT] create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}
