package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
	"github.com/permitwatch/lead-portal/internal/infra/http/middleware"
	"github.com/permitwatch/lead-portal/internal/infra/queue"
)

// MailSender delivers an email synchronously. Satisfied by mail.Sender.
type MailSender interface {
	Send(to, subject, content string) error
}

// NotifyHandler implements send-email and send-mail. Both endpoints log and
// persist a status record; email delivery additionally goes through the
// queue or straight over SMTP when either is configured. Postal mail has no
// carrier integration and records stay "scheduled".
type NotifyHandler struct {
	Notifications entity.NotificationRepositoryInterface
	Producer      queue.ProducerInterface // optional
	Mailer        MailSender              // optional
}

func NewNotifyHandler(repo entity.NotificationRepositoryInterface, producer queue.ProducerInterface, mailer MailSender) *NotifyHandler {
	return &NotifyHandler{Notifications: repo, Producer: producer, Mailer: mailer}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (h *NotifyHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	log.Printf("[NOTIFY] email requested: to=%s subject=%q", req.To, req.Subject)

	record := &entity.EmailRecord{
		ID:        uuid.New().String(),
		To:        req.To,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    "sent",
		Timestamp: time.Now().UTC(),
	}

	h.dispatch(r, record)

	if err := h.Notifications.SaveEmail(r.Context(), record); err != nil {
		log.Printf("[NOTIFY] persist email failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordNotification("email")
	writeJSON(w, http.StatusOK, record)
}

// dispatch hands the email to the queue when one is wired, falling back to
// inline SMTP. Delivery is best-effort; the persisted status stays "sent"
// either way, matching the endpoint's original contract.
func (h *NotifyHandler) dispatch(r *http.Request, record *entity.EmailRecord) {
	switch {
	case h.Producer != nil:
		payload := queue.OutboundEmail{
			ID:      record.ID,
			To:      record.To,
			Subject: record.Subject,
			Content: record.Content,
		}
		if err := h.Producer.PublishEmail(r.Context(), payload); err != nil {
			log.Printf("[NOTIFY] publish email %s failed: %v", record.ID, err)
		}
	case h.Mailer != nil:
		if err := h.Mailer.Send(record.To, record.Subject, record.Content); err != nil {
			log.Printf("[NOTIFY] smtp send %s failed: %v", record.ID, err)
		}
	}
}

type sendPostalRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

func (h *NotifyHandler) SendPostal(w http.ResponseWriter, r *http.Request) {
	var req sendPostalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	log.Printf("[NOTIFY] postal mail requested: to=%s", req.To)

	record := &entity.PostalRecord{
		ID:        uuid.New().String(),
		To:        req.To,
		Content:   req.Content,
		Status:    "scheduled",
		Timestamp: time.Now().UTC(),
	}

	if err := h.Notifications.SavePostal(r.Context(), record); err != nil {
		log.Printf("[NOTIFY] persist postal failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordNotification("postal")
	writeJSON(w, http.StatusOK, record)
}
