package main

import (
	"context"
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/imagehost"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/PlanetSoftweb/sppl/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/markbates/goth/gothic"
)

func newRouter(sessionManager *scs.SessionManager, images *imagehost.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)

	dbConn := db.GetDB()
	userStore := store.NewUserStore(dbConn)
	userService := service.NewUserService(dbConn, userStore)

	// Public self-registration flow; reachable without a session.
	registerRoutes(r, images)

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.LoginPage().Render(r.Context(), w)
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		user, err := userService.Authenticate(r.Context(), r.Form.Get("email"), r.Form.Get("password"))
		if err != nil {
			httputil.Unauthorized(w, "Invalid email or password")
			return
		}
		sessionManager.Put(r.Context(), "userID", user.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Username string `json:"username"`
			Password string `json:"password"`
			Confirm  string `json:"confirmPassword"`
		}
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if req.Confirm != "" && req.Confirm != req.Password {
			httputil.BadRequest(w, "Passwords do not match", nil)
			return
		}
		user, err := userService.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			if err == service.ErrEmailTaken {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			httputil.BadRequest(w, err.Error(), err)
			return
		}
		sessionManager.Put(r.Context(), "userID", user.ID.String())
		httputil.JSON(w, http.StatusCreated, map[string]string{"id": user.ID.String(), "email": user.Email})
	})

	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := httputil.Decode(r, &req); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		user, err := userService.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			httputil.Unauthorized(w, "Invalid email or password")
			return
		}
		sessionManager.Put(r.Context(), "userID", user.ID.String())
		httputil.JSON(w, http.StatusOK, map[string]string{"id": user.ID.String(), "email": user.Email})
	})

	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		user, err := userService.FindOrCreateUserByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create user", err)
			return
		}

		sessionManager.Put(r.Context(), "userID", user.ID.String())

		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		sessionManager.Destroy(r.Context())
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessionManager, userStore))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			username := ""
			if user := middleware.GetAuthenticatedUser(r.Context()); user != nil {
				username = user.Username
			}
			views.HomePage(username).Render(r.Context(), w)
		})

		hostelRoutes(r, sessionManager)
		teamRoutes(r, sessionManager, images)
		matchRoutes(r)
		ledgerRoutes(r)
		volunteerRoutes(r)
	})

	return r
}

// hostelUnlocked reports whether this session has passed the hostel's gate.
func hostelUnlocked(sessionManager *scs.SessionManager, ctx context.Context, hostelID string) bool {
	return sessionManager.GetBool(ctx, "hostel_unlocked_"+hostelID)
}
