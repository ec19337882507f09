package entity

import (
	"context"
	"time"
)

// LookupItem is a named entry of one of the reference collections managed in
// the admin console (categories, phases, and so on). Name is unique within
// its own collection, enforced by the database.
type LookupItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LookupKind identifies one reference collection. Key is the value stored in
// the kind column, Path the URL resource segment, Label the singular name
// used in error messages.
type LookupKind struct {
	Key   string
	Path  string
	Label string
}

var (
	KindCategory     = LookupKind{Key: "category", Path: "categories", Label: "Category"}
	KindPhase        = LookupKind{Key: "phase", Path: "phases", Label: "Phase"}
	KindProjectType  = LookupKind{Key: "project_type", Path: "project-types", Label: "Project type"}
	KindStatus       = LookupKind{Key: "status", Path: "statuses", Label: "Status"}
	KindMunicipality = LookupKind{Key: "municipality", Path: "municipalities", Label: "Municipality"}
	KindRegion       = LookupKind{Key: "region", Path: "regions", Label: "Region"}
)

// LookupKinds lists every reference collection the API exposes.
var LookupKinds = []LookupKind{
	KindCategory,
	KindPhase,
	KindProjectType,
	KindStatus,
	KindMunicipality,
	KindRegion,
}

type LookupRepositoryInterface interface {
	List(ctx context.Context, kind LookupKind) ([]*LookupItem, error)
	Create(ctx context.Context, kind LookupKind, item *LookupItem) error
	Delete(ctx context.Context, kind LookupKind, id string) error
}
