package entity

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// Lead is a construction/permit project record. The dashboard sends the
// fields below, but the API accepts and preserves arbitrary extra fields,
// so the known part is typed and everything else rides in Extra. A lead
// decoded from a document keeps that document as the serialization source
// of truth; the typed fields are a view over it.
type Lead struct {
	ID              string
	Title           string
	Category        string
	Phase           string
	Type            string
	Address         string
	Municipality    string
	Region          string
	Owner           string
	Email           string
	Phone           string
	Description     string
	ApplicationDate string
	PublicationDate string
	ProjectValue    float64
	Status          string
	Architect       string
	Contractor      string
	Extra           map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time

	doc map[string]any
}

func (l *Lead) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	l.FromDocument(m)
	return nil
}

func (l Lead) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Document())
}

// FromDocument fills the typed fields from a decoded JSON object. Known keys
// holding unexpected types are kept in Extra instead of being dropped.
func (l *Lead) FromDocument(m map[string]any) {
	l.Extra = make(map[string]any)
	l.doc = make(map[string]any, len(m))
	for k, v := range m {
		l.doc[k] = v
		s, isString := v.(string)
		switch k {
		case "id":
			l.ID = s
		case "title":
			l.setString(&l.Title, k, v, s, isString)
		case "category":
			l.setString(&l.Category, k, v, s, isString)
		case "phase":
			l.setString(&l.Phase, k, v, s, isString)
		case "type":
			l.setString(&l.Type, k, v, s, isString)
		case "address":
			l.setString(&l.Address, k, v, s, isString)
		case "municipality":
			l.setString(&l.Municipality, k, v, s, isString)
		case "region":
			l.setString(&l.Region, k, v, s, isString)
		case "owner":
			l.setString(&l.Owner, k, v, s, isString)
		case "email":
			l.setString(&l.Email, k, v, s, isString)
		case "phone":
			l.setString(&l.Phone, k, v, s, isString)
		case "description":
			l.setString(&l.Description, k, v, s, isString)
		case "applicationDate":
			l.setString(&l.ApplicationDate, k, v, s, isString)
		case "publicationDate":
			l.setString(&l.PublicationDate, k, v, s, isString)
		case "status":
			l.setString(&l.Status, k, v, s, isString)
		case "architect":
			l.setString(&l.Architect, k, v, s, isString)
		case "contractor":
			l.setString(&l.Contractor, k, v, s, isString)
		case "projectValue":
			switch n := v.(type) {
			case float64:
				l.ProjectValue = n
			case string:
				f, err := strconv.ParseFloat(n, 64)
				if err != nil {
					l.Extra[k] = v
					continue
				}
				l.ProjectValue = f
			default:
				l.Extra[k] = v
			}
		case "createdAt":
			l.CreatedAt = parseTime(v)
		case "updatedAt":
			l.UpdatedAt = parseTime(v)
		default:
			l.Extra[k] = v
		}
	}
}

func (l *Lead) setString(dst *string, key string, raw any, s string, isString bool) {
	if !isString {
		l.Extra[key] = raw
		return
	}
	*dst = s
}

// Document renders the lead as the flat JSON object the API serves. A lead
// decoded from a document echoes every key that document holds, empty and
// zero values included, with the stored value verbatim. A lead assembled
// field by field has no document to echo, so it emits extras first and set
// typed fields on top, a typed field winning on key collision.
func (l Lead) Document() map[string]any {
	if l.doc != nil {
		m := make(map[string]any, len(l.doc)+3)
		for k, v := range l.doc {
			m[k] = v
		}
		m["id"] = l.ID
		if !l.CreatedAt.IsZero() {
			m["createdAt"] = l.CreatedAt
		}
		if !l.UpdatedAt.IsZero() {
			m["updatedAt"] = l.UpdatedAt
		}
		return m
	}

	m := make(map[string]any, len(l.Extra)+20)
	for k, v := range l.Extra {
		m[k] = v
	}
	m["id"] = l.ID
	putNonEmpty(m, "title", l.Title)
	putNonEmpty(m, "category", l.Category)
	putNonEmpty(m, "phase", l.Phase)
	putNonEmpty(m, "type", l.Type)
	putNonEmpty(m, "address", l.Address)
	putNonEmpty(m, "municipality", l.Municipality)
	putNonEmpty(m, "region", l.Region)
	putNonEmpty(m, "owner", l.Owner)
	putNonEmpty(m, "email", l.Email)
	putNonEmpty(m, "phone", l.Phone)
	putNonEmpty(m, "description", l.Description)
	putNonEmpty(m, "applicationDate", l.ApplicationDate)
	putNonEmpty(m, "publicationDate", l.PublicationDate)
	putNonEmpty(m, "status", l.Status)
	putNonEmpty(m, "architect", l.Architect)
	putNonEmpty(m, "contractor", l.Contractor)
	if l.ProjectValue != 0 {
		m["projectValue"] = l.ProjectValue
	}
	if !l.CreatedAt.IsZero() {
		m["createdAt"] = l.CreatedAt
	}
	if !l.UpdatedAt.IsZero() {
		m["updatedAt"] = l.UpdatedAt
	}
	return m
}

func putNonEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func parseTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type LeadRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, id string, fields map[string]any, now time.Time) (*Lead, error)
	Update(ctx context.Context, id string, fields map[string]any, now time.Time) (*Lead, error)
	Delete(ctx context.Context, id string) error
}
