package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is
// applied by the caller so tests can exercise routes in isolation.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/readyz", s.GetReady)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/confirm", s.ConfirmTrip)

			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.ListActivities)
			r.Get("/activities/{activityId}", s.GetActivity)

			r.Get("/participants", s.ListParticipants)
			r.Post("/invites", s.InviteParticipant)

			r.Post("/links", s.CreateLink)
			r.Get("/links", s.ListLinks)
		})
	})

	r.Route("/participants/{participantId}", func(r chi.Router) {
		r.Get("/", s.GetParticipant)
		r.Get("/confirm", s.ConfirmParticipant)
	})

	return r
}
