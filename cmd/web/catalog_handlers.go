package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/config"
	"github.com/allinlistings/admin/internal/httputil"
	"github.com/allinlistings/admin/internal/service"
	"github.com/allinlistings/admin/views"
	"github.com/go-chi/chi/v5"
)

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// upsertResponse finishes a form POST: redirect on success, re-render the
// form with its errors otherwise.
func upsertResponse(w http.ResponseWriter, r *http.Request, res service.UpsertResult, redirect string, form templ.Component) {
	if res.Success {
		w.Header().Set("HX-Redirect", redirect)
		w.WriteHeader(http.StatusOK)
		return
	}
	views.Render(w, r, form)
}

func registerCatalogRoutes(r chi.Router, cfg config.Config, casinos *service.CasinoService, tours *service.TourService, events *service.EventService, tournaments *service.TournamentService) {
	// Casinos

	r.Get(service.PathCasinos, func(w http.ResponseWriter, r *http.Request) {
		rows, err := casinos.List(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch casinos", err)
			return
		}
		page, st := paginate(rows, r, func(c catalog.CasinoWithStars, q string) bool {
			return containsFold(c.Name, q) || containsFold(c.Slug, q)
		}, map[string]func(a, b catalog.CasinoWithStars) bool{
			"name": func(a, b catalog.CasinoWithStars) bool { return a.Name < b.Name },
			"slug": func(a, b catalog.CasinoWithStars) bool { return a.Slug < b.Slug },
		})
		views.Render(w, r, views.Layout("Casinos", service.PathCasinos, views.CasinoList(page, st, cfg.SiteBaseURL)))
	})

	r.Get(service.PathCasinos+"/new", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.Layout("New casino", service.PathCasinos, views.CasinoForm(&catalog.Casino{}, nil)))
	})

	r.Get(service.PathCasinos+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			httputil.BadRequest(w, "Invalid casino ID", err)
			return
		}
		casino, err := casinos.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Casino not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch casino", err)
			return
		}
		views.Render(w, r, views.Layout("Edit casino", service.PathCasinos, views.CasinoForm(casino, nil)))
	})

	r.Post(service.PathCasinos, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		res := casinos.Upsert(r.Context(), r.PostForm)
		casino, _ := catalog.ParseCasinoForm(r.PostForm)
		upsertResponse(w, r, res, service.PathCasinos, views.CasinoForm(casino, &res))
	})

	r.Post(service.PathCasinos+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		id, _ := idParam(r)
		res := casinos.Delete(r.Context(), id)
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(5, res.Message))
	})

	// Tours

	r.Get(service.PathTours, func(w http.ResponseWriter, r *http.Request) {
		rows, err := tours.List(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tours", err)
			return
		}
		page, st := paginate(rows, r, func(t catalog.Tour, q string) bool {
			return containsFold(t.Name, q) || containsFold(t.Slug, q)
		}, map[string]func(a, b catalog.Tour) bool{
			"name": func(a, b catalog.Tour) bool { return a.Name < b.Name },
			"slug": func(a, b catalog.Tour) bool { return a.Slug < b.Slug },
		})
		views.Render(w, r, views.Layout("Tours", service.PathTours, views.TourList(page, st, cfg.SiteBaseURL)))
	})

	r.Get(service.PathTours+"/new", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.Layout("New tour", service.PathTours, views.TourForm(&catalog.Tour{}, nil)))
	})

	r.Get(service.PathTours+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			httputil.BadRequest(w, "Invalid tour ID", err)
			return
		}
		tour, err := tours.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Tour not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch tour", err)
			return
		}
		views.Render(w, r, views.Layout("Edit tour", service.PathTours, views.TourForm(tour, nil)))
	})

	r.Post(service.PathTours, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		res := tours.Upsert(r.Context(), r.PostForm)
		tour, _ := catalog.ParseTourForm(r.PostForm)
		upsertResponse(w, r, res, service.PathTours, views.TourForm(tour, &res))
	})

	r.Post(service.PathTours+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		id, _ := idParam(r)
		res := tours.Delete(r.Context(), id)
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(3, res.Message))
	})

	// Events

	eventFormOptions := func(w http.ResponseWriter, r *http.Request) ([]catalog.Ref, []catalog.Ref, bool) {
		casinoRefs, err := casinos.Options(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch casinos", err)
			return nil, nil, false
		}
		tourRefs, err := tours.Options(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tours", err)
			return nil, nil, false
		}
		return casinoRefs, tourRefs, true
	}

	r.Get(service.PathEvents, func(w http.ResponseWriter, r *http.Request) {
		rows, err := events.List(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch events", err)
			return
		}
		page, st := paginate(rows, r, func(e catalog.EventRow, q string) bool {
			return containsFold(e.Name, q) || containsFold(e.Slug, q) || containsFold(e.CasinoName, q)
		}, map[string]func(a, b catalog.EventRow) bool{
			"name":   func(a, b catalog.EventRow) bool { return a.Name < b.Name },
			"casino": func(a, b catalog.EventRow) bool { return a.CasinoName < b.CasinoName },
			"tour":   func(a, b catalog.EventRow) bool { return a.TourName < b.TourName },
			"from":   func(a, b catalog.EventRow) bool { return a.From.Before(b.From) },
			"to":     func(a, b catalog.EventRow) bool { return a.To.Before(b.To) },
		})
		views.Render(w, r, views.Layout("Events", service.PathEvents, views.EventList(page, st, cfg.SiteBaseURL)))
	})

	r.Get(service.PathEvents+"/new", func(w http.ResponseWriter, r *http.Request) {
		casinoRefs, tourRefs, ok := eventFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.Layout("New event", service.PathEvents, views.EventForm(&catalog.Event{}, casinoRefs, tourRefs, nil)))
	})

	r.Get(service.PathEvents+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			httputil.BadRequest(w, "Invalid event ID", err)
			return
		}
		event, err := events.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Event not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch event", err)
			return
		}
		casinoRefs, tourRefs, ok := eventFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.Layout("Edit event", service.PathEvents, views.EventForm(event, casinoRefs, tourRefs, nil)))
	})

	r.Post(service.PathEvents, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		res := events.Upsert(r.Context(), r.PostForm)
		if res.Success {
			w.Header().Set("HX-Redirect", service.PathEvents)
			w.WriteHeader(http.StatusOK)
			return
		}
		event, _ := catalog.ParseEventForm(r.PostForm)
		casinoRefs, tourRefs, ok := eventFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.EventForm(event, casinoRefs, tourRefs, &res))
	})

	// Two-phase delete: the first call may come back asking for
	// confirmation; the confirm button repeats it with ?force=true.
	r.Post(service.PathEvents+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		id, _ := idParam(r)
		force := r.URL.Query().Get("force") == "true"
		res := events.Delete(r.Context(), id, force)
		if res.RequiresConfirmation {
			views.Render(w, r, views.EventDeleteConfirmRow(id, res.TournamentCount, res.Message))
			return
		}
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(7, res.Message))
	})

	// Tournaments

	tournamentFormOptions := func(w http.ResponseWriter, r *http.Request) ([]catalog.Ref, []catalog.Ref, bool) {
		casinoRefs, err := casinos.Options(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch casinos", err)
			return nil, nil, false
		}
		eventRefs, err := events.Options(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch events", err)
			return nil, nil, false
		}
		return casinoRefs, eventRefs, true
	}

	r.Get(service.PathTournaments, func(w http.ResponseWriter, r *http.Request) {
		rows, err := tournaments.List(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tournaments", err)
			return
		}
		page, st := paginate(rows, r, func(t catalog.TournamentRow, q string) bool {
			return containsFold(t.Name, q) || containsFold(t.Slug, q) || containsFold(t.CasinoName, q)
		}, map[string]func(a, b catalog.TournamentRow) bool{
			"name":   func(a, b catalog.TournamentRow) bool { return a.Name < b.Name },
			"casino": func(a, b catalog.TournamentRow) bool { return a.CasinoName < b.CasinoName },
			"date":   func(a, b catalog.TournamentRow) bool { return a.Date.Before(b.Date) },
			"time":   func(a, b catalog.TournamentRow) bool { return a.Time < b.Time },
			"buyin":  func(a, b catalog.TournamentRow) bool { return a.Buyin < b.Buyin },
		})
		views.Render(w, r, views.Layout("Tournaments", service.PathTournaments, views.TournamentList(page, st, cfg.SiteBaseURL)))
	})

	r.Get(service.PathTournaments+"/new", func(w http.ResponseWriter, r *http.Request) {
		casinoRefs, eventRefs, ok := tournamentFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.Layout("New tournament", service.PathTournaments, views.TournamentForm(&catalog.Tournament{}, casinoRefs, eventRefs, nil)))
	})

	r.Get(service.PathTournaments+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			httputil.BadRequest(w, "Invalid tournament ID", err)
			return
		}
		tournament, err := tournaments.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Tournament not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch tournament", err)
			return
		}
		casinoRefs, eventRefs, ok := tournamentFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.Layout("Edit tournament", service.PathTournaments, views.TournamentForm(tournament, casinoRefs, eventRefs, nil)))
	})

	// Clone pre-fills the form from an existing tournament with the id and
	// slug cleared, so saving creates a fresh row through the normal upsert.
	r.Get(service.PathTournaments+"/{id}/clone", func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			httputil.BadRequest(w, "Invalid tournament ID", err)
			return
		}
		tournament, err := tournaments.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Tournament not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch tournament", err)
			return
		}
		tournament.ID = 0
		tournament.Slug = ""
		casinoRefs, eventRefs, ok := tournamentFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.Layout("Clone tournament", service.PathTournaments, views.TournamentForm(tournament, casinoRefs, eventRefs, nil)))
	})

	r.Post(service.PathTournaments, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		res := tournaments.Upsert(r.Context(), r.PostForm)
		if res.Success {
			w.Header().Set("HX-Redirect", service.PathTournaments)
			w.WriteHeader(http.StatusOK)
			return
		}
		tournament, _ := catalog.ParseTournamentForm(r.PostForm)
		casinoRefs, eventRefs, ok := tournamentFormOptions(w, r)
		if !ok {
			return
		}
		views.Render(w, r, views.TournamentForm(tournament, casinoRefs, eventRefs, &res))
	})

	r.Post(service.PathTournaments+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		id, _ := idParam(r)
		res := tournaments.Delete(r.Context(), id)
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(8, res.Message))
	})
}
