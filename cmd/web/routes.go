package main

import (
	"context"
	"net/http"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/config"
	"github.com/allinlistings/admin/internal/httputil"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/allinlistings/admin/internal/service"
	"github.com/allinlistings/admin/internal/store"
	"github.com/allinlistings/admin/internal/upload"
	users "github.com/allinlistings/admin/internal/user"
	"github.com/allinlistings/admin/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/markbates/goth/gothic"
)

func newRouter(database *sqlx.DB, sessionManager *scs.SessionManager, listingCache *cache.Cache, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)

	userStore := store.NewUserStore(database)
	casinoService := service.NewCasinoService(store.NewCasinoStore(database), listingCache)
	tourService := service.NewTourService(store.NewTourStore(database), listingCache)
	eventService := service.NewEventService(database, store.NewEventStore(database), listingCache)
	tournamentService := service.NewTournamentService(store.NewTournamentStore(database), listingCache)
	blogService := service.NewBlogService(database, store.NewBlogStore(database), listingCache)
	userService := service.NewUserService(userStore)
	uploader := upload.NewClient(cfg.UploadURL, cfg.CDNAccessToken)

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.LoginPage())
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
		if r.Header.Get("HX-Request") != "" {
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessionManager, userStore))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			views.Render(w, r, views.Layout("Dashboard", "", views.Index()))
		})

		registerCatalogRoutes(r, cfg, casinoService, tourService, eventService, tournamentService)
		registerBlogRoutes(r, cfg, blogService)

		r.Get("/dashboard/users", func(w http.ResponseWriter, r *http.Request) {
			rows, err := userService.ListUsers(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to fetch users", err)
				return
			}
			page, st := paginate(rows, r, func(u users.User, q string) bool {
				return containsFold(u.Username, q) || containsFold(u.Email, q)
			}, map[string]func(a, b users.User) bool{
				"username": func(a, b users.User) bool { return a.Username < b.Username },
				"email":    func(a, b users.User) bool { return a.Email < b.Email },
				"created":  func(a, b users.User) bool { return a.CreatedAt.Before(b.CreatedAt) },
			})
			views.Render(w, r, views.Layout("Users", "/dashboard/users", views.UserList(page, st)))
		})

		r.Post("/dashboard/uploads", func(w http.ResponseWriter, r *http.Request) {
			field := r.URL.Query().Get("field")
			if field == "" {
				httputil.BadRequest(w, "Missing upload field", nil)
				return
			}

			if err := r.ParseMultipartForm(16 << 20); err != nil {
				httputil.BadRequest(w, "Invalid upload payload", err)
				return
			}
			file, header, err := r.FormFile("image")
			if err != nil {
				views.Render(w, r, views.UploadResult(field, "", "Pick a file first."))
				return
			}
			defer file.Close()

			url, err := uploader.Upload(r.Context(), header.Filename, file)
			if err != nil {
				views.Render(w, r, views.UploadResult(field, "", "Upload failed. Try again."))
				return
			}
			views.Render(w, r, views.UploadResult(field, url, ""))
		})

		r.Get("/api/blog/categories", func(w http.ResponseWriter, r *http.Request) {
			options, err := blogService.CategoryOptions(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to fetch categories", err)
				return
			}
			httputil.JSON(w, http.StatusOK, options)
		})

		r.Get("/api/blog/tags", func(w http.ResponseWriter, r *http.Request) {
			options, err := blogService.TagOptions(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to fetch tags", err)
				return
			}
			httputil.JSON(w, http.StatusOK, options)
		})
	})

	return r
}
