// Package httpapi exposes the game engine over HTTP.
//
// Routes:
//   - POST   /players/{name}  register a player
//   - DELETE /players/{name}  remove a player
//   - GET    /players         roster in join order
//   - GET    /players/{name}  one player, hand included
//   - POST   /game            start a game (fix the solution and deal)
//   - DELETE /game            reset to an empty table
//   - POST   /suggest         ask the table to refute a suggestion
//   - POST   /accuse          check an accusation against the solution
//   - GET    /events          websocket stream of engine events
//   - GET    /health
//
// Every engine error maps to a stable status and error code; see writeError.
// Once the engine is poisoned every route answers 503 engine_poisoned.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"example.com/cluedo-server/internal/game"
)

// Server bundles the router, the engine it fronts and the event hub.
type Server struct {
	r      *chi.Mux
	engine *game.Engine
	hub    *Hub
	log    logrus.FieldLogger
}

// New constructs a Server, installs middleware, and registers routes.
func New(engine *game.Engine, logger logrus.FieldLogger, requestTimeout time.Duration) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		engine: engine,
		hub:    NewHub(engine.EventManager(), logger),
		log:    logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger(logger))
	s.r.Use(chimw.Recoverer)
	s.r.Use(poisonGuard(logger))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// The event stream is long-lived and must not be cut by the request timeout.
	s.r.Get("/events", s.hub.ServeHTTP)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))

		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.handleListPlayers)
			r.Post("/{name}", s.handleAddPlayer)
			r.Get("/{name}", s.handleGetPlayer)
			r.Delete("/{name}", s.handleRemovePlayer)
		})
		r.Post("/game", s.handleStartGame)
		r.Delete("/game", s.handleResetGame)
		r.Post("/suggest", s.handleSuggest)
		r.Post("/accuse", s.handleAccuse)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found"})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully and disconnects event stream clients.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.WithField("addr", addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("Shutting down HTTP server")
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// poisonGuard turns the ErrPoisoned panic into a 503 so a poisoned engine is
// reported as unavailable instead of as an internal error per request. Any
// other panic is passed on to the Recoverer.
func poisonGuard(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, game.ErrPoisoned) {
					logger.WithField("path", r.URL.Path).Error("Game engine is poisoned; refusing request")
					writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "engine_poisoned"})
					return
				}
				panic(rec)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs one line per request through logrus.
func requestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start),
				"request":  chimw.GetReqID(r.Context()),
			}).Debug("HTTP request")
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
