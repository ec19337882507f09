package entity

import (
	"context"
	"time"
)

// ContactRecord is one outbound-communication attempt logged against a lead.
// Type is "email" or "postal" by convention, not validated.
type ContactRecord struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
}

// EmailRecord is persisted by the send-email endpoint.
type EmailRecord struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// PostalRecord is persisted by the send-mail endpoint. Postal delivery has no
// integration; records stay "scheduled".
type PostalRecord struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ContactRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]*ContactRecord, error)
	Create(ctx context.Context, rec *ContactRecord) error
}

type NotificationRepositoryInterface interface {
	SaveEmail(ctx context.Context, rec *EmailRecord) error
	SavePostal(ctx context.Context, rec *PostalRecord) error
}
