package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"github.com/sejalchopra/dental-ai-chatbot/app/config"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/resolver"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	cfg         *config.Config
	resolverSvc *resolver.Service

	app *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:         do.MustInvoke[*config.Config](di),
		resolverSvc: do.MustInvoke[*resolver.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/health", s.handleHealth)
	app.Post("/simulate", s.handleSimulate)

	s.app = app

	return s, nil
}

// Run serves until ctx is cancelled, then drains the listener.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.app.Listen(s.cfg.Server.Addr)
	})

	g.Go(func() error {
		<-ctx.Done()

		return s.app.Shutdown()
	})

	return g.Wait()
}
