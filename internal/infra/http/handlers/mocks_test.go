package handlers

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/permitwatch/lead-portal/internal/auth"
	"github.com/permitwatch/lead-portal/internal/entity"
	"github.com/permitwatch/lead-portal/internal/infra/queue"
)

// fakeLeadRepo is an in-memory lead store so round-trip properties (create
// then get, delete idempotency) can be asserted end to end.
type fakeLeadRepo struct {
	leads map[string]*entity.Lead
	order []string
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (f *fakeLeadRepo) List(_ context.Context, limit int) ([]*entity.Lead, error) {
	out := make([]*entity.Lead, 0, len(f.order))
	for _, id := range f.order {
		if len(out) == limit {
			break
		}
		out = append(out, f.leads[id])
	}
	return out, nil
}

func (f *fakeLeadRepo) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return lead, nil
}

func (f *fakeLeadRepo) Create(_ context.Context, id string, fields map[string]any, now time.Time) (*entity.Lead, error) {
	lead := &entity.Lead{}
	lead.FromDocument(fields)
	lead.ID = id
	lead.CreatedAt = now
	lead.UpdatedAt = now
	f.leads[id] = lead
	f.order = append(f.order, id)
	return lead, nil
}

func (f *fakeLeadRepo) Update(_ context.Context, id string, fields map[string]any, now time.Time) (*entity.Lead, error) {
	existing, ok := f.leads[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	doc := existing.Document()
	delete(doc, "id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	for k, v := range fields {
		doc[k] = v
	}
	lead := &entity.Lead{}
	lead.FromDocument(doc)
	lead.ID = id
	lead.CreatedAt = existing.CreatedAt
	lead.UpdatedAt = now
	f.leads[id] = lead
	return lead, nil
}

func (f *fakeLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.leads[id]; !ok {
		return entity.ErrNotFound
	}
	delete(f.leads, id)
	return nil
}

type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) List(ctx context.Context, kind entity.LookupKind) ([]*entity.LookupItem, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LookupItem), args.Error(1)
}

func (m *MockLookupRepository) Create(ctx context.Context, kind entity.LookupKind, item *entity.LookupItem) error {
	args := m.Called(ctx, kind, item)
	return args.Error(0)
}

func (m *MockLookupRepository) Delete(ctx context.Context, kind entity.LookupKind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) List(ctx context.Context) ([]*entity.Engagement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) Create(ctx context.Context, e *entity.Engagement) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEngagementRepository) DeleteByLeadID(ctx context.Context, leadID string) (int64, error) {
	args := m.Called(ctx, leadID)
	return args.Get(0).(int64), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context, limit int) ([]*entity.ContactRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRecord), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, rec *entity.ContactRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveEmail(ctx context.Context, rec *entity.EmailRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockNotificationRepository) SavePostal(ctx context.Context, rec *entity.PostalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) FindByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishEmail(ctx context.Context, payload queue.OutboundEmail) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// testDeps bundles the router dependencies every handler test starts from.
type testDeps struct {
	Leads         *fakeLeadRepo
	Lookups       *MockLookupRepository
	SavedLeads    *MockEngagementRepository
	Prospections  *MockEngagementRepository
	Contacts      *MockContactRepository
	Notifications *MockNotificationRepository
	Users         *MockAdminUserRepository
	Tokens        *auth.TokenManager
}

func newTestDeps() *testDeps {
	return &testDeps{
		Leads:         newFakeLeadRepo(),
		Lookups:       new(MockLookupRepository),
		SavedLeads:    new(MockEngagementRepository),
		Prospections:  new(MockEngagementRepository),
		Contacts:      new(MockContactRepository),
		Notifications: new(MockNotificationRepository),
		Users:         new(MockAdminUserRepository),
		Tokens:        auth.NewTokenManager("test-secret", 24*time.Hour),
	}
}

func (d *testDeps) router() *chi.Mux {
	return NewRouter(Deps{
		Auth:          auth.NewService(d.Users, d.Tokens),
		Leads:         d.Leads,
		Lookups:       d.Lookups,
		SavedLeads:    d.SavedLeads,
		Prospections:  d.Prospections,
		Contacts:      d.Contacts,
		Notifications: d.Notifications,
	})
}
