// Package echoapi exposes the college data set over HTTP. It is the remote
// plane the client gateway talks to.
package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/college"
	"github.com/trezcool/elimu/core/user"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		Repo           college.Repository
		UserSvc        *user.Service
		Mail           core.EmailService
		Validate       *validator.Validate
		Translator     ut.Translator
		DisableReqLogs bool
		// Shutdown is called when a handler returns a shutdown error.
		Shutdown func()
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	signalShutdown := s.opts.Shutdown
	if signalShutdown == nil {
		signalShutdown = func() {}
	}
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	metrics := newMetrics()
	s.app.Use(metrics.middleware)
	s.app.GET("/metrics", metrics.handler())

	s.app.GET("/", home)
	s.app.POST("/auth/login", s.login)

	api := s.app.Group("/api")
	registerUserAPI(api, s.opts)
	registerCollegeAPI(api, s.opts)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Conf.ServerAddress())
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Elimu API!")
}
