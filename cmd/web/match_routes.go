package main

import (
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/go-chi/chi/v5"
)

func matchRoutes(r chi.Router) {
	dbConn := db.GetDB()
	matchService := service.NewMatchService(dbConn, store.NewMatchStore(dbConn), store.NewTeamStore(dbConn), store.NewHostelStore(dbConn))

	r.Get("/api/matches", func(w http.ResponseWriter, r *http.Request) {
		var filter store.MatchFilter
		if sport := r.URL.Query().Get("sport"); sport != "" {
			if !event.ValidSport(sport) {
				httputil.BadRequest(w, "Invalid sport", nil)
				return
			}
			filter.Sport = event.Sport(sport)
		}
		if status := r.URL.Query().Get("status"); status != "" {
			filter.Status = event.MatchStatus(status)
		}

		matches, err := matchService.GetMatches(r.Context(), filter)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load matches", err)
			return
		}
		if matches == nil {
			matches = []event.Match{}
		}
		httputil.JSON(w, http.StatusOK, matches)
	})

	r.Get("/api/matches/schedule", func(w http.ResponseWriter, r *http.Request) {
		sport := r.URL.Query().Get("sport")
		if !event.ValidSport(sport) {
			httputil.BadRequest(w, "Invalid sport", nil)
			return
		}

		matches, err := matchService.GetMatches(r.Context(), store.MatchFilter{Sport: event.Sport(sport)})
		if err != nil {
			httputil.InternalServerError(w, "Failed to load matches", err)
			return
		}

		groups := service.GroupSchedule(matches, event.Sport(sport))
		if groups == nil {
			groups = []service.ScheduleGroup{}
		}
		httputil.JSON(w, http.StatusOK, groups)
	})

	r.Post("/api/matches", func(w http.ResponseWriter, r *http.Request) {
		var input service.MatchInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		match, err := matchService.CreateMatch(r.Context(), input)
		if err != nil {
			serviceError(w, err, "Team not found", "Failed to create match")
			return
		}
		httputil.JSON(w, http.StatusCreated, match)
	})

	r.Post("/api/matches/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Winner string `json:"winner"`
		}
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		match, err := matchService.CompleteMatch(r.Context(), id, req.Winner)
		if err != nil {
			serviceError(w, err, "Match not found", "Failed to complete match")
			return
		}
		httputil.JSON(w, http.StatusOK, match)
	})

	r.Post("/api/matches/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		match, err := matchService.CancelMatch(r.Context(), id)
		if err != nil {
			serviceError(w, err, "Match not found", "Failed to cancel match")
			return
		}
		httputil.JSON(w, http.StatusOK, match)
	})
}
