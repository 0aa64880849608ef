package main

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/imagehost"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/PlanetSoftweb/sppl/views"
	"github.com/go-chi/chi/v5"
)

// registerRoutes serves the unauthenticated player self-registration flow:
// whoever holds an active link URL can submit a pending registration.
func registerRoutes(r chi.Router, images *imagehost.Client) {
	dbConn := db.GetDB()
	registrationService := service.NewRegistrationService(dbConn, store.NewTeamStore(dbConn), store.NewHostelStore(dbConn), images)

	r.Get("/register/{linkID}", func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")

		reg, err := registrationService.ResolveLink(r.Context(), linkID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				views.RegistrationError("This registration link does not exist.").Render(r.Context(), w)
				return
			}
			if errors.Is(err, service.ErrLinkInactive) {
				views.RegistrationError("Registration for this team is closed.").Render(r.Context(), w)
				return
			}
			httputil.InternalServerError(w, "Failed to load registration link", err)
			return
		}

		views.RegistrationPage(reg.Hostel, reg.Team, linkID).Render(r.Context(), w)
	})

	r.Post("/register/{linkID}", func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")

		r.Body = http.MaxBytesReader(w, r.Body, imagehost.MaxPhotoSize+64*1024)
		if err := r.ParseMultipartForm(imagehost.MaxPhotoSize); err != nil {
			httputil.BadRequest(w, "Image size must be less than 2MB", err)
			return
		}

		jersey, err := strconv.Atoi(r.Form.Get("jerseyNumber"))
		if err != nil {
			httputil.BadRequest(w, "Jersey number must be a number", err)
			return
		}
		input := service.PlayerInput{
			Name:         r.Form.Get("name"),
			Position:     r.Form.Get("position"),
			JerseyNumber: jersey,
			MobileNumber: r.Form.Get("mobileNumber"),
			TshirtSize:   r.Form.Get("tshirtSize"),
		}

		var photo io.Reader
		var filename string
		if file, header, err := r.FormFile("photo"); err == nil {
			defer file.Close()
			photo = file
			filename = header.Filename
		}

		if _, err := registrationService.Submit(r.Context(), linkID, input, photo, filename); err != nil {
			serviceError(w, err, "Registration link not found", "Failed to submit registration")
			return
		}

		http.Redirect(w, r, "/registration-success", http.StatusSeeOther)
	})

	r.Get("/registration-success", func(w http.ResponseWriter, r *http.Request) {
		views.RegistrationSuccess().Render(r.Context(), w)
	})
}
