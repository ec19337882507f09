package entity

import (
	"context"
	"time"
)

// Engagement marks a user's interest in a lead. The same shape backs both
// the saved-leads and prospection-leads collections. Duplicates are allowed;
// deletion matches on LeadID and may remove several rows at once.
type Engagement struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultUserID is stamped on engagement and contact records when the client
// does not identify a user.
const DefaultUserID = "default-user"

type EngagementRepositoryInterface interface {
	List(ctx context.Context) ([]*Engagement, error)
	Create(ctx context.Context, e *Engagement) error
	// DeleteByLeadID removes every record for the lead and reports how many
	// rows went away.
	DeleteByLeadID(ctx context.Context, leadID string) (int64, error)
}
