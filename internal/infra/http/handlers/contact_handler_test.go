package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/permitwatch/lead-portal/internal/entity"
)

func TestContactCreateAppliesDefaults(t *testing.T) {
	deps := newTestDeps()
	deps.Contacts.On("Create", mock.Anything, mock.MatchedBy(func(rec *entity.ContactRecord) bool {
		return rec.Status == "sent" && rec.UserID == "default-user" && rec.ID != ""
	})).Return(nil)
	router := deps.router()

	w := postJSON(t, router, "/contact-history", map[string]string{
		"leadId":    "lead-1",
		"type":      "email",
		"recipient": "owner@example.com",
		"subject":   "Project inquiry",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "sent", body["status"])
	assert.Equal(t, "default-user", body["userId"])
	assert.NotEmpty(t, body["timestamp"])
	deps.Contacts.AssertExpectations(t)
}

func TestContactCreateKeepsClientStatus(t *testing.T) {
	deps := newTestDeps()
	deps.Contacts.On("Create", mock.Anything, mock.MatchedBy(func(rec *entity.ContactRecord) bool {
		return rec.Status == "failed"
	})).Return(nil)
	router := deps.router()

	w := postJSON(t, router, "/contact-history", map[string]string{
		"leadId": "lead-1",
		"type":   "postal",
		"status": "failed",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	deps.Contacts.AssertExpectations(t)
}

func TestContactListUsesFeedLimit(t *testing.T) {
	deps := newTestDeps()
	deps.Contacts.On("List", mock.Anything, contactFeedLimit).Return([]*entity.ContactRecord{}, nil)
	router := deps.router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/contact-history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	deps.Contacts.AssertExpectations(t)
}
