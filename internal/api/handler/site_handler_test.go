package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

type stubContactService struct {
	sendFn func(ctx context.Context, in ports.ContactInput) error
}

func (s *stubContactService) Send(ctx context.Context, in ports.ContactInput) error {
	return s.sendFn(ctx, in)
}

func (s *stubContactService) Info() ports.ContactInfo {
	return ports.ContactInfo{Email: "hello@example.com", Address: "Lahore, Pakistan"}
}

type stubDashboardService struct {
	summary *ports.Dashboard
	err     error
}

func (s *stubDashboardService) Summary(ctx context.Context) (*ports.Dashboard, error) {
	return s.summary, s.err
}

func TestSiteHandler_SendContact(t *testing.T) {
	var got ports.ContactInput
	h := NewSiteHandler(&stubContactService{sendFn: func(ctx context.Context, in ports.ContactInput) error {
		got = in
		return nil
	}})

	c, rec := newTestContext(http.MethodPost, "/v1/contact", `{"name":"Bilal","email":"b@example.com","subject":"Hi","message":"Hello"}`)
	require.NoError(t, h.SendContact(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "Bilal", got.Name)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.MsgContactSent, resp.Message)
}

func TestSiteHandler_SendContact_Errors(t *testing.T) {
	h := NewSiteHandler(&stubContactService{sendFn: func(ctx context.Context, in ports.ContactInput) error {
		return domain.ErrMissingFields
	}})

	c, _ := newTestContext(http.MethodPost, "/v1/contact", `{"name":"Bilal"}`)
	assert.True(t, errors.Is(h.SendContact(c), domain.ErrMissingFields))

	c, _ = newTestContext(http.MethodPost, "/v1/contact", `{"name":"Bilal","email":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(h.SendContact(c)))
}

func TestSiteHandler_StaticPages(t *testing.T) {
	h := NewSiteHandler(&stubContactService{})

	c, rec := newTestContext(http.MethodGet, "/v1/contact", "")
	require.NoError(t, h.ContactInfo(c))
	assert.Contains(t, rec.Body.String(), "Lahore, Pakistan")

	c, rec = newTestContext(http.MethodGet, "/v1/about", "")
	require.NoError(t, h.About(c))

	var about aboutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &about))
	assert.NotEmpty(t, about.Intro)
	assert.NotEmpty(t, about.Features)
}

func TestDashboardHandler_Summary(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardService{summary: &ports.Dashboard{
		User:  domain.User{ID: "u1", Name: "Ayesha"},
		Stats: ports.DashboardStats{Reminders: 1},
		UpcomingReminders: []domain.Reminder{
			{ID: "r1", ServiceType: "Plumber", Date: "2026-11-02", Time: "09:30"},
		},
	}})

	c, rec := newTestContext(http.MethodGet, "/v1/dashboard", "")
	require.NoError(t, h.Summary(c))

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ayesha", resp.User.Name)
	assert.Equal(t, 1, resp.Stats.Reminders)
	assert.Len(t, resp.UpcomingReminders, 1)

	h = NewDashboardHandler(&stubDashboardService{err: domain.ErrNoActiveUser})
	c, _ = newTestContext(http.MethodGet, "/v1/dashboard", "")
	assert.True(t, errors.Is(h.Summary(c), domain.ErrNoActiveUser))
}
