package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/notesapi"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/store"
)

// Server serves the note and quiz generation API.
type Server struct {
	cfg    Config
	engine *gin.Engine
	log    *logger.Logger
}

// New builds a Server. notes and gen are required; a nil log discards
// output.
func New(cfg Config, notes store.NoteRepo, gen quizgen.Generator, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	h := &noteHandler{notes: notes, gen: gen, log: log, version: cfg.Version}

	r := gin.New()
	r.Use(recovery(log))
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware(cfg.AllowOrigins))

	r.GET("/", h.health)

	api := r.Group("/api")
	{
		notes := api.Group("/notes")
		notes.POST("/", limitBody(cfg.MaxBodyBytes), h.createNote)
		notes.GET("/:id", h.getNote)
	}

	return &Server{cfg: cfg, engine: r, log: log}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", ln.Addr().String(), "version", s.cfg.Version, "path", notesapi.NotesPath)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
