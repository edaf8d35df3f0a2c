package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"flounder-swim/internal/config"
	"flounder-swim/internal/metrics"
	"flounder-swim/internal/portal"
	"flounder-swim/internal/util"
)

type Server struct {
	app    *portal.App
	logger *slog.Logger
	views  views
}

// New builds the admin portal's HTTP server.
func New(cfg config.Config, app *portal.App, logger *slog.Logger, g prometheus.Gatherer) (*http.Server, error) {
	h, err := Handler(app, logger, g)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Handler returns the routed portal with its middleware stack.
func Handler(app *portal.App, logger *slog.Logger, g prometheus.Gatherer) (http.Handler, error) {
	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	s := &Server{app: app, logger: logger, views: v}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.getHome)

	mux.HandleFunc("GET /participants", s.getParticipants)
	mux.HandleFunc("POST /participants/add", s.addParticipant)
	mux.HandleFunc("POST /participants/filter", s.filterParticipants)
	mux.HandleFunc("POST /participants/sort", s.sortParticipants)
	mux.HandleFunc("POST /participants/cancel", s.cancelParticipant)
	mux.HandleFunc("POST /participants/{id}/edit", s.editParticipant)
	mux.HandleFunc("POST /participants/{id}/save", s.saveParticipant)
	mux.HandleFunc("POST /participants/{id}/delete", s.deleteParticipant)

	mux.HandleFunc("GET /teams", s.getTeams)
	mux.HandleFunc("POST /teams/add", s.addTeam)
	mux.HandleFunc("POST /teams/cancel", s.cancelTeam)
	mux.HandleFunc("POST /teams/{id}/edit", s.editTeam)
	mux.HandleFunc("POST /teams/{id}/save", s.saveTeam)
	mux.HandleFunc("POST /teams/{id}/delete", s.deleteTeam)
	mux.HandleFunc("POST /teams/members/add", s.addMember)
	mux.HandleFunc("POST /teams/members/save", s.saveMember)
	mux.HandleFunc("POST /teams/members/{id}/edit", s.editMember)
	mux.HandleFunc("POST /teams/members/{id}/delete", s.deleteMember)

	mux.HandleFunc("GET /protocol", s.getProtocol)
	mux.HandleFunc("POST /protocol/add", s.addProtocol)
	mux.HandleFunc("POST /protocol/save", s.saveProtocol)
	mux.HandleFunc("POST /protocol/apply", s.applyProtocol)
	mux.HandleFunc("POST /protocol/close", s.closeProtocol)
	mux.HandleFunc("POST /protocol/distances/add", s.addDistance)
	mux.HandleFunc("POST /protocol/{id}/open", s.openProtocol)
	mux.HandleFunc("POST /protocol/{id}/delete", s.deleteProtocol)
	mux.HandleFunc("POST /protocol/distances/{id}/heats/add", s.addHeat)
	mux.HandleFunc("POST /protocol/lanes/{id}/edit", s.editLane)
	mux.HandleFunc("POST /protocol/lanes/save", s.saveLane)
	mux.HandleFunc("POST /protocol/lanes/cancel", s.cancelLane)
	mux.HandleFunc("GET /protocol/download", s.downloadProtocol)
	mux.HandleFunc("POST /protocol/download", s.downloadProtocol)

	mux.HandleFunc("GET /awards", s.getAwards)

	mux.HandleFunc("GET /regulations", s.getRegulations)
	mux.HandleFunc("POST /regulations/heats/add", s.addHeatName)
	mux.HandleFunc("POST /regulations/heats/cancel", s.cancelHeatName)
	mux.HandleFunc("POST /regulations/heats/{id}/edit", s.editHeatName)
	mux.HandleFunc("POST /regulations/heats/{id}/save", s.saveHeatName)
	mux.HandleFunc("POST /regulations/heats/{id}/delete", s.deleteHeatName)
	mux.HandleFunc("POST /regulations/ages/add", s.addAge)
	mux.HandleFunc("POST /regulations/ages/cancel", s.cancelAge)
	mux.HandleFunc("POST /regulations/ages/{id}/edit", s.editAge)
	mux.HandleFunc("POST /regulations/ages/{id}/save", s.saveAge)
	mux.HandleFunc("POST /regulations/ages/{id}/delete", s.deleteAge)

	mux.Handle("GET /metrics", metrics.Handler(g))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"page": app.Active(),
			"ts":   util.NowISO(),
		})
	})

	return chi.Chain(
		middleware.RequestID,
		middleware.RealIP,
		logRequests(logger),
		middleware.Recoverer,
	).Handler(mux), nil
}

func logRequests(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// seeOther answers a mutation by sending the browser back to its page.
func seeOther(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// formFields flattens the posted form to its first values.
func formFields(r *http.Request) map[string]string {
	if err := r.ParseForm(); err != nil {
		return nil
	}
	out := make(map[string]string, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
