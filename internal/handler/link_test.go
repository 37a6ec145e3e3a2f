package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestCreateLink_201(t *testing.T) {
	linkID := uuid.New()
	links := &mockLinkServicer{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = linkID
			return l, nil
		},
	}
	body := map[string]string{"title": "Hotel booking", "url": "https://hotel.example/booking/42"}

	rec := do(newHTTPHandler(services{links: links}), http.MethodPost, "/trips/"+uuid.NewString()+"/links", jsonBody(t, body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		LinkID uuid.UUID `json:"linkId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, linkID, resp.LinkID)
}

func TestCreateLink_400_BadURL(t *testing.T) {
	body := map[string]string{"title": "Hotel booking", "url": "ftp://files.example"}

	rec := do(newHTTPHandler(services{}), http.MethodPost, "/trips/"+uuid.NewString()+"/links", jsonBody(t, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"url"}, fieldNames(decodeError(t, rec)))
}

func TestListLinks_200(t *testing.T) {
	links := &mockLinkServicer{
		listByTrip: func(context.Context, uuid.UUID) ([]domain.Link, error) {
			return []domain.Link{{ID: uuid.New(), Title: "Map", URL: "https://maps.example/lx"}}, nil
		},
	}

	rec := do(newHTTPHandler(services{links: links}), http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Links []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"links"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Links, 1)
	assert.Equal(t, "https://maps.example/lx", resp.Links[0].URL)
}
