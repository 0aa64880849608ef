package main

import (
	"context"
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/imagehost"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
)

func teamRoutes(r chi.Router, sessionManager *scs.SessionManager, images *imagehost.Client) {
	dbConn := db.GetDB()
	teamStore := store.NewTeamStore(dbConn)
	hostelStore := store.NewHostelStore(dbConn)
	teamService := service.NewTeamService(dbConn, teamStore, hostelStore)
	registrationService := service.NewRegistrationService(dbConn, teamStore, hostelStore, images)

	// requireTeamManager resolves a team and checks the session may manage
	// its hostel (owner or unlocked gate).
	requireTeamManager := func(ctx context.Context, teamID string) (*event.Team, error) {
		team, err := teamStore.GetTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		hostelID := team.HostelID.String()
		if _, err := teamService.RequireManager(ctx, hostelID, hostelUnlocked(sessionManager, ctx, hostelID)); err != nil {
			return nil, err
		}
		return team, nil
	}

	requirePlayerManager := func(ctx context.Context, playerID string) (*event.Player, error) {
		player, err := teamStore.GetPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if _, err := requireTeamManager(ctx, player.TeamID.String()); err != nil {
			return nil, err
		}
		return player, nil
	}

	r.Post("/api/teams/{teamID}/players", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := requireTeamManager(r.Context(), teamID); err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}

		var input service.PlayerInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		player, err := teamService.AddPlayer(r.Context(), teamID, input)
		if err != nil {
			serviceError(w, err, "Team not found", "Failed to add player")
			return
		}
		httputil.JSON(w, http.StatusCreated, player)
	})

	r.Get("/api/teams/{teamID}/players", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		players, err := teamStore.GetPlayersByTeam(r.Context(), teamID)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load players", err)
			return
		}
		if players == nil {
			players = []event.Player{}
		}
		httputil.JSON(w, http.StatusOK, players)
	})

	r.Put("/api/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := requirePlayerManager(r.Context(), id); err != nil {
			serviceError(w, err, "Player not found", "Failed to check access")
			return
		}

		var input service.PlayerInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		player, err := teamService.UpdatePlayer(r.Context(), id, input)
		if err != nil {
			serviceError(w, err, "Player not found", "Failed to update player")
			return
		}
		httputil.JSON(w, http.StatusOK, player)
	})

	r.Delete("/api/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := requirePlayerManager(r.Context(), id); err != nil {
			serviceError(w, err, "Player not found", "Failed to check access")
			return
		}
		if err := teamService.DeletePlayer(r.Context(), id); err != nil {
			serviceError(w, err, "Player not found", "Failed to delete player")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/api/players/{id}/photo", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := requirePlayerManager(r.Context(), id); err != nil {
			serviceError(w, err, "Player not found", "Failed to check access")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, imagehost.MaxPhotoSize)
		if err := r.ParseMultipartForm(imagehost.MaxPhotoSize); err != nil {
			httputil.BadRequest(w, "Image size must be less than 2MB", err)
			return
		}
		file, header, err := r.FormFile("photo")
		if err != nil {
			httputil.BadRequest(w, "Photo file is required", err)
			return
		}
		defer file.Close()

		url, err := images.Upload(r.Context(), header.Filename, file)
		if err != nil {
			httputil.InternalServerError(w, "Failed to upload photo", err)
			return
		}
		if err := teamService.SetPlayerPhoto(r.Context(), id, url); err != nil {
			serviceError(w, err, "Player not found", "Failed to save photo")
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"photoUrl": url})
	})

	r.Get("/api/teams/{teamID}/export", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		team, err := requireTeamManager(r.Context(), teamID)
		if err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}
		hostel, err := hostelStore.GetHostel(r.Context(), team.HostelID.String())
		if err != nil {
			serviceError(w, err, "Hostel not found", "Failed to load hostel")
			return
		}
		players, err := teamStore.GetPlayersByTeamAndStatus(r.Context(), teamID, event.PlayerApproved)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load players", err)
			return
		}

		workbook, filename, err := service.BuildRosterWorkbook(hostel.Name, team.Sport, players)
		if err != nil {
			httputil.InternalServerError(w, "Failed to build spreadsheet", err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := workbook.Write(w); err != nil {
			// Headers already sent; nothing else to do but log.
			httputil.InternalServerError(w, "Failed to write spreadsheet", err)
		}
	})

	r.Post("/api/teams/{teamID}/registration-links", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := requireTeamManager(r.Context(), teamID); err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}
		link, err := registrationService.GenerateLink(r.Context(), teamID)
		if err != nil {
			serviceError(w, err, "Team not found", "Failed to create registration link")
			return
		}
		httputil.JSON(w, http.StatusCreated, map[string]any{
			"link": link,
			"url":  "/register/" + link.ID.String(),
		})
	})

	r.Get("/api/teams/{teamID}/registration-links", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := requireTeamManager(r.Context(), teamID); err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}
		links, err := teamStore.GetRegistrationLinksByTeam(r.Context(), teamID)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load registration links", err)
			return
		}
		if links == nil {
			links = []event.RegistrationLink{}
		}
		httputil.JSON(w, http.StatusOK, links)
	})

	r.Post("/api/registration-links/{id}/deactivate", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		link, err := teamStore.GetRegistrationLink(r.Context(), id)
		if err != nil {
			serviceError(w, err, "Registration link not found", "Failed to load registration link")
			return
		}
		if _, err := requireTeamManager(r.Context(), link.TeamID.String()); err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}
		if err := registrationService.DeactivateLink(r.Context(), id); err != nil {
			serviceError(w, err, "Registration link not found", "Failed to deactivate link")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/api/teams/{teamID}/requests", func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := requireTeamManager(r.Context(), teamID); err != nil {
			serviceError(w, err, "Team not found", "Failed to check access")
			return
		}
		requests, err := registrationService.PendingRequests(r.Context(), teamID)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load player requests", err)
			return
		}
		if requests == nil {
			requests = []event.Player{}
		}
		httputil.JSON(w, http.StatusOK, requests)
	})

	r.Post("/api/requests/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := requirePlayerManager(r.Context(), id); err != nil {
			serviceError(w, err, "Player request not found", "Failed to check access")
			return
		}
		if err := registrationService.Approve(r.Context(), id); err != nil {
			serviceError(w, err, "Player request not found", "Failed to approve request")
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"status": string(event.PlayerApproved)})
	})

	r.Post("/api/requests/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := requirePlayerManager(r.Context(), id); err != nil {
			serviceError(w, err, "Player request not found", "Failed to check access")
			return
		}
		if err := registrationService.Reject(r.Context(), id); err != nil {
			serviceError(w, err, "Player request not found", "Failed to reject request")
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"status": string(event.PlayerRejected)})
	})
}
