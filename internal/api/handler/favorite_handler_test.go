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

type stubFavoriteService struct {
	toggleFn func(ctx context.Context, id string) (*ports.FavoriteResult, error)
	statusFn func(ctx context.Context, id string) (*domain.FavoriteStatus, error)
	list     []domain.Provider
}

func (s *stubFavoriteService) Toggle(ctx context.Context, id string) (*ports.FavoriteResult, error) {
	return s.toggleFn(ctx, id)
}

func (s *stubFavoriteService) Status(ctx context.Context, id string) (*domain.FavoriteStatus, error) {
	return s.statusFn(ctx, id)
}

func (s *stubFavoriteService) List(ctx context.Context) []domain.Provider { return s.list }

func TestFavoriteHandler_Toggle_FailureIsStillOK(t *testing.T) {
	stub := &stubFavoriteService{
		toggleFn: func(ctx context.Context, id string) (*ports.FavoriteResult, error) {
			return &ports.FavoriteResult{
				Success: false,
				Error:   domain.MsgOffline,
				Toast: &domain.Toast{
					ID:      "t1",
					Message: domain.MsgOffline,
					Type:    domain.ToastError,
					Action:  &domain.ToastAction{Label: "Retry", Method: http.MethodPost, Href: "/v1/favorites/" + id + "/toggle"},
				},
				Cause: domain.ErrOffline,
			}, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/favorites/pl-1/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues("pl-1")

	require.NoError(t, h.Toggle(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, domain.MsgOffline, resp["error"])
	assert.NotContains(t, resp, "Cause")

	toast := resp["toast"].(map[string]any)
	action := toast["action"].(map[string]any)
	assert.Equal(t, "/v1/favorites/pl-1/toggle", action["href"])
}

func TestFavoriteHandler_Toggle_UnknownProvider(t *testing.T) {
	stub := &stubFavoriteService{
		toggleFn: func(ctx context.Context, id string) (*ports.FavoriteResult, error) {
			return nil, domain.ErrProviderNotFound
		},
	}
	h := NewFavoriteHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/favorites/x/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	assert.True(t, errors.Is(h.Toggle(c), domain.ErrProviderNotFound))
}

func TestFavoriteHandler_StatusAndList(t *testing.T) {
	stub := &stubFavoriteService{
		statusFn: func(ctx context.Context, id string) (*domain.FavoriteStatus, error) {
			return &domain.FavoriteStatus{ProviderID: id, State: domain.FavoriteLoading, IsFavorite: true}, nil
		},
		list: []domain.Provider{plumber},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/favorites/pl-1", "")
	c.SetParamNames("id")
	c.SetParamValues("pl-1")
	require.NoError(t, h.Status(c))

	var st domain.FavoriteStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, domain.FavoriteLoading, st.State)
	assert.True(t, st.IsFavorite)

	c, rec = newTestContext(http.MethodGet, "/v1/favorites", "")
	require.NoError(t, h.List(c))

	var list favoritesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Favorites, 1)
	assert.Equal(t, "pl-1", list.Favorites[0].ID)
}
