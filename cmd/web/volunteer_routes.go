package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func volunteerRoutes(r chi.Router) {
	volunteerStore := store.NewVolunteerStore(db.GetDB())

	type volunteerRequest struct {
		Name          string `json:"name"`
		Role          string `json:"role"`
		ContactNumber string `json:"contactNumber"`
		Email         string `json:"email"`
		AssignedSport string `json:"assignedSport"`
	}

	validate := func(req *volunteerRequest) string {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return "Volunteer name is required"
		}
		if strings.TrimSpace(req.Role) == "" {
			return "Role is required"
		}
		if !event.ValidSport(req.AssignedSport) {
			return "Invalid sport"
		}
		return ""
	}

	r.Get("/api/volunteers", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		volunteers, err := volunteerStore.GetVolunteersByOwner(r.Context(), userID.String())
		if err != nil {
			httputil.InternalServerError(w, "Failed to load volunteers", err)
			return
		}
		if volunteers == nil {
			volunteers = []event.Volunteer{}
		}
		httputil.JSON(w, http.StatusOK, volunteers)
	})

	r.Post("/api/volunteers", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		var req volunteerRequest
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if msg := validate(&req); msg != "" {
			httputil.BadRequest(w, msg, nil)
			return
		}

		volunteer := &event.Volunteer{
			ID:            uuid.New(),
			OwnerID:       userID,
			Name:          req.Name,
			Role:          req.Role,
			ContactNumber: req.ContactNumber,
			Email:         req.Email,
			AssignedSport: event.Sport(req.AssignedSport),
		}
		if err := volunteerStore.CreateVolunteer(r.Context(), volunteer); err != nil {
			httputil.InternalServerError(w, "Failed to add volunteer", err)
			return
		}
		httputil.JSON(w, http.StatusCreated, volunteer)
	})

	r.Put("/api/volunteers/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		id := chi.URLParam(r, "id")

		volunteer, err := volunteerStore.GetVolunteer(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Volunteer not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to load volunteer", err)
			return
		}
		if volunteer.OwnerID != userID {
			httputil.Forbidden(w, "You do not have permission to modify this record")
			return
		}

		var req volunteerRequest
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if msg := validate(&req); msg != "" {
			httputil.BadRequest(w, msg, nil)
			return
		}

		volunteer.Name = req.Name
		volunteer.Role = req.Role
		volunteer.ContactNumber = req.ContactNumber
		volunteer.Email = req.Email
		volunteer.AssignedSport = event.Sport(req.AssignedSport)

		if err := volunteerStore.UpdateVolunteer(r.Context(), volunteer); err != nil {
			httputil.InternalServerError(w, "Failed to update volunteer", err)
			return
		}
		httputil.JSON(w, http.StatusOK, volunteer)
	})

	r.Delete("/api/volunteers/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		id := chi.URLParam(r, "id")

		volunteer, err := volunteerStore.GetVolunteer(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Volunteer not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to load volunteer", err)
			return
		}
		if volunteer.OwnerID != userID {
			httputil.Forbidden(w, "You do not have permission to modify this record")
			return
		}

		if err := volunteerStore.DeleteVolunteer(r.Context(), id); err != nil {
			httputil.InternalServerError(w, "Failed to delete volunteer", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
