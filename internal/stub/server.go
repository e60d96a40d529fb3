// Package stub is a stand-in for the question-answering service. It speaks the
// same /perguntar contract and answers with canned text, so the client can be
// demonstrated and tested without the real service.
package stub

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/teacherbob/teacherbob/internal/answer"
	"github.com/teacherbob/teacherbob/internal/logger"
)

// BusyDetail is returned while the server is warming up.
const BusyDetail = "Servidor ocupado, a base de conhecimento ainda está sendo inicializada. " +
	"Tente novamente em alguns instantes."

type appValidator struct {
	validate *validator.Validate
}

func (v appValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// request is the incoming question. texto is mandatory; the other fields may be
// absent or null.
type request struct {
	Text    *string `json:"texto" validate:"required"`
	Subject *string `json:"materia"`
	Topic   *string `json:"topico"`
}

// Server serves canned answers over HTTP.
type Server struct {
	addr   string
	router *echo.Echo
	ready  time.Time
	delay  time.Duration
	now    func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithWarmup makes the server answer 503 for d after it is created.
func WithWarmup(d time.Duration) Option {
	return func(s *Server) { s.ready = s.now().Add(d) }
}

// WithDelay holds every reply for d, to make the typing indicator visible.
func WithDelay(d time.Duration) Option {
	return func(s *Server) { s.delay = d }
}

// NewServer builds a server that will listen on addr.
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{
		addr:   addr,
		router: echo.New(),
		now:    time.Now,
	}
	s.ready = s.now()
	for _, opt := range opts {
		opt(s)
	}

	e := s.router
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &appValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger())

	e.GET("/", s.home)
	e.POST("/perguntar", s.ask)
	return s
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	logger.WithComponent("stub").Info("stub server listening", "addr", s.addr)
	if err := s.router.Start(s.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) home(c echo.Context) error {
	return c.String(http.StatusOK, "Teacher Bob stub is running")
}

func (s *Server) ask(c echo.Context) error {
	if s.now().Before(s.ready) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, BusyDetail)
	}

	req := new(request)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	reply := Compose(*req.Text, deref(req.Subject), deref(req.Topic))
	return c.JSON(http.StatusOK, answer.Reply{Text: reply})
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.WithComponent("stub").Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"elapsed", time.Since(start))
			return nil
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
