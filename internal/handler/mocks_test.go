package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/httpjson"
)

// Test doubles for the handler's service interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.confirm(ctx, id)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockActivityServicer struct {
	create    func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID   func(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	listByDay func(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, tripID, activityID)
}
func (m *mockActivityServicer) ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error) {
	return m.listByDay(ctx, tripID)
}

type mockParticipantServicer struct {
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	confirm    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	invite     func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
}

func (m *mockParticipantServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}
func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}

type mockLinkServicer struct {
	create     func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// compile-time checks: each mock must satisfy the interface it stands in for.
var (
	_ handler.TripServicer        = (*mockTripServicer)(nil)
	_ handler.ActivityServicer    = (*mockActivityServicer)(nil)
	_ handler.ParticipantServicer = (*mockParticipantServicer)(nil)
	_ handler.LinkServicer        = (*mockLinkServicer)(nil)
	_ handler.Pinger              = pingerFunc(nil)
)

// ---- helpers ---------------------------------------------------------------

const webBaseURL = "http://web.test"

// services bundles the doubles for one test; nil fields get empty mocks.
type services struct {
	trips        *mockTripServicer
	activities   *mockActivityServicer
	participants *mockParticipantServicer
	links        *mockLinkServicer
	db           handler.Pinger
}

// newHTTPHandler wires a Server with the given mocks into the real chi router.
// This mirrors how main.go wires it in production, minus middleware.
func newHTTPHandler(s services) http.Handler {
	if s.trips == nil {
		s.trips = &mockTripServicer{}
	}
	if s.activities == nil {
		s.activities = &mockActivityServicer{}
	}
	if s.participants == nil {
		s.participants = &mockParticipantServicer{}
	}
	if s.links == nil {
		s.links = &mockLinkServicer{}
	}
	srv := handler.NewServer(s.trips, s.activities, s.participants, s.links, handler.Options{
		WebBaseURL: webBaseURL,
		DB:         s.db,
	})
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpjson.ErrorDetail {
	t.Helper()
	var resp httpjson.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func fieldNames(detail httpjson.ErrorDetail) []string {
	names := make([]string, len(detail.Fields))
	for i, f := range detail.Fields {
		names[i] = f.Field
	}
	return names
}
