// Package httpserver exposes a Recogniser over HTTP.
//
// Routes:
//   - GET  /health
//   - GET  /templates   list stored templates (name, index)
//   - POST /templates   add a template from {name, points}
//   - POST /recognise   classify {points}
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

// Server bundles the router and the recogniser it serves.
type Server struct {
	r   *chi.Mux
	log logrus.FieldLogger

	mu  sync.RWMutex // guards rec
	rec *stroke.Recogniser
}

// New installs middleware and registers routes. Handlers time out after
// timeout.
func New(rec *stroke.Recogniser, log logrus.FieldLogger, timeout time.Duration) *Server {
	s := &Server{r: chi.NewRouter(), rec: rec, log: log}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLogger)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Route("/templates", func(r chi.Router) {
		r.Get("/", s.handleListTemplates)
		r.Post("/", s.handleAddTemplate)
	})
	s.r.Post("/recognise", s.handleRecognise)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the router for tests and embedding.
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Infof("Listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"status":     ww.Status(),
			"elapsed":    time.Since(start),
		}).Debugf("%s %s", r.Method, r.URL.Path)
	})
}

type templateRes struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	templates := s.rec.Templates()
	s.mu.RUnlock()

	out := make([]templateRes, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateRes{Index: t.Index, Name: t.Name})
	}
	_ = json.NewEncoder(w).Encode(out)
}

type addTemplateReq struct {
	Name   string         `json:"name"`
	Points []models.Point `json:"points"`
}

type addTemplateRes struct {
	Name      string `json:"name"`
	Templates int    `json:"templates"`
}

func (s *Server) handleAddTemplate(w http.ResponseWriter, r *http.Request) {
	var req addTemplateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing_name")
		return
	}

	s.mu.Lock()
	ok := s.rec.AddTemplate(req.Name, models.ToStroke(req.Points))
	n := s.rec.Len()
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "invalid_stroke")
		return
	}
	s.log.Infof("Added template '%s' over HTTP", req.Name)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(addTemplateRes{Name: req.Name, Templates: n})
}

type recogniseReq struct {
	Points []models.Point `json:"points"`
}

type recogniseRes struct {
	Matched  bool    `json:"matched"`
	Name     string  `json:"name,omitempty"`
	Index    int     `json:"index"`
	Score    float64 `json:"score"`
	Distance float64 `json:"distance"`
}

func (s *Server) handleRecognise(w http.ResponseWriter, r *http.Request) {
	var req recogniseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.mu.RLock()
	m, ok := s.rec.Recognise(models.ToStroke(req.Points))
	s.mu.RUnlock()

	if !ok {
		_ = json.NewEncoder(w).Encode(recogniseRes{Index: -1})
		return
	}
	_ = json.NewEncoder(w).Encode(recogniseRes{
		Matched:  true,
		Name:     m.Template.Name,
		Index:    m.Template.Index,
		Score:    m.Score,
		Distance: m.Distance,
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
