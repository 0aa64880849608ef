package main

import (
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
)

func hostelRoutes(r chi.Router, sessionManager *scs.SessionManager) {
	dbConn := db.GetDB()
	hostelService := service.NewHostelService(dbConn, store.NewHostelStore(dbConn))
	teamService := service.NewTeamService(dbConn, store.NewTeamStore(dbConn), store.NewHostelStore(dbConn))

	r.Get("/api/hostels", func(w http.ResponseWriter, r *http.Request) {
		hostels, err := hostelService.GetHostels(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to load hostels", err)
			return
		}
		if hostels == nil {
			hostels = []event.Hostel{}
		}
		httputil.JSON(w, http.StatusOK, hostels)
	})

	r.Post("/api/hostels", func(w http.ResponseWriter, r *http.Request) {
		var input service.HostelInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		hostel, err := hostelService.CreateHostel(r.Context(), input)
		if err != nil {
			serviceError(w, err, "Hostel not found", "Failed to create hostel")
			return
		}
		httputil.JSON(w, http.StatusCreated, hostel)
	})

	r.Get("/api/hostels/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		hostel, err := hostelService.GetHostel(r.Context(), id)
		if err != nil {
			serviceError(w, err, "Hostel not found", "Failed to load hostel")
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]any{
			"hostel":   hostel,
			"unlocked": hostelUnlocked(sessionManager, r.Context(), id),
		})
	})

	// The dashboard gate: a correct secret unlocks this hostel for the rest
	// of the session, surviving page reloads.
	r.Post("/api/hostels/{id}/unlock", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Password string `json:"password"`
		}
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if _, err := hostelService.CheckAccess(r.Context(), id, req.Password); err != nil {
			serviceError(w, err, "Hostel not found", "Failed to check access")
			return
		}
		sessionManager.Put(r.Context(), "hostel_unlocked_"+id, true)
		httputil.JSON(w, http.StatusOK, map[string]bool{"unlocked": true})
	})

	r.Get("/api/hostels/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		teams, err := teamService.GetTeamsWithRosters(r.Context(), id)
		if err != nil {
			serviceError(w, err, "Hostel not found", "Failed to load teams")
			return
		}
		httputil.JSON(w, http.StatusOK, teams)
	})

	r.Post("/api/hostels/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := teamService.RequireManager(r.Context(), id, hostelUnlocked(sessionManager, r.Context(), id)); err != nil {
			serviceError(w, err, "Hostel not found", "Failed to check access")
			return
		}

		var req struct {
			Sport      string `json:"sport"`
			MaxPlayers int    `json:"maxPlayers"`
		}
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if !event.ValidSport(req.Sport) {
			httputil.BadRequest(w, "Invalid sport", nil)
			return
		}
		team, err := teamService.CreateTeam(r.Context(), id, event.Sport(req.Sport), req.MaxPlayers)
		if err != nil {
			serviceError(w, err, "Hostel not found", "Failed to create team")
			return
		}
		httputil.JSON(w, http.StatusCreated, team)
	})
}
