// Package server provides the HTTP API: snapshot load and save for the
// remote store, plus SVG renderings of the dial and the stats charts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/chart"
	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/session"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/storage"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

// maxBody bounds the size of a saved snapshot.
const maxBody = 16 << 20

// Server is the HTTP server.
type Server struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
	scale  dial.Scale
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock sets the source of "today" for range selection.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithScale sets the dial scale.
func WithScale(sc dial.Scale) Option {
	return func(s *Server) { s.scale = sc }
}

// New creates a server over store.
func New(store storage.Store, opts ...Option) *Server {
	s := &Server{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		scale:  dial.DefaultScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.handlePing)
		r.Get("/load", s.handleLoad)
		r.Post("/save", s.handleSave)
		r.Get("/stats", s.handleStats)
		r.Get("/chart/{kind}.svg", s.handleChart)
		r.Get("/dial.svg", s.handleDial)
	})

	s.router = r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// cors allows any origin and answers preflight requests.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// --- API Handlers ---

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	user := storage.UserOrDefault(r.URL.Query().Get("user"))
	snap, err := s.store.Load(r.Context(), user)
	if err != nil {
		s.logger.Error("load failed", "user", user, "error", err)
		http.Error(w, "Failed to load", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	var snap model.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	user := storage.UserOrDefault(snap.User)
	if err := s.store.Save(r.Context(), user, snap); err != nil {
		s.logger.Error("save failed", "user", user, "error", err)
		http.Error(w, "Failed to save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

// reportFor loads the user of r and builds the report selected by the query.
func (s *Server) reportFor(r *http.Request) (stats.Report, model.Snapshot, error) {
	q := r.URL.Query()
	sel, err := timecalc.ParseSelector(q.Get("range"))
	if err != nil {
		return stats.Report{}, model.Snapshot{}, badRequest{err}
	}
	g, err := stats.GroupingFor(q.Get("group"))
	if err != nil {
		return stats.Report{}, model.Snapshot{}, badRequest{err}
	}
	snap, err := s.store.Load(r.Context(), storage.UserOrDefault(q.Get("user")))
	if err != nil {
		return stats.Report{}, model.Snapshot{}, err
	}
	return stats.Build(snap, sel, g, s.now()), snap, nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	rep, _, err := s.reportFor(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, rep)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	rep, snap, err := s.reportFor(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	q := r.URL.Query()
	o := chart.OptionsFrom(snap.Settings)
	o.Percent = truthy(q.Get("percent"))
	o.Hidden = stats.NewHidden(splitList(q.Get("hide"))...)

	svg, err := chart.Render(kind, rep, o, floatParam(q.Get("width"), 0), floatParam(q.Get("ratio"), 1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeSVG(w, svg)
}

func (s *Server) handleDial(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	snap, err := s.store.Load(r.Context(), storage.UserOrDefault(q.Get("user")))
	if err != nil {
		s.fail(w, err)
		return
	}
	date := q.Get("date")
	if date == "" {
		date = timecalc.ISO(s.now())
	}
	if _, err := timecalc.ParseISO(date, time.Local); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess := session.New(snap.User, snap, session.WithLogger(s.logger))
	theme, err := sess.FindTheme(q.Get("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	minutes := stats.TotalsByTheme(sess.Themes(), sess.Entries()[date])[theme.ID]
	size := floatParam(q.Get("size"), 160)
	vp := canvas.Viewport{Width: size, Height: size, PixelRatio: floatParam(q.Get("ratio"), 1)}
	layout := s.scale.Layout(vp, minutes, theme.Color, dial.StyleFrom(snap.Settings))
	svg := canvas.NewSVG(vp)
	dial.Render(svg, layout)
	writeSVG(w, svg)
}

// --- Helpers ---

type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }

func (s *Server) fail(w http.ResponseWriter, err error) {
	var br badRequest
	if errors.As(err, &br) {
		http.Error(w, br.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Error("request failed", "error", err)
	http.Error(w, "Failed to load", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(v)
}

func writeSVG(w http.ResponseWriter, svg *canvas.SVG) {
	w.Header().Set("Content-Type", "image/svg+xml")
	svg.WriteTo(w)
}

func truthy(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func floatParam(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
