package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"github.com/sejalchopra/dental-ai-chatbot/app/client/llm"
	"github.com/sejalchopra/dental-ai-chatbot/app/config"
	"github.com/sejalchopra/dental-ai-chatbot/app/server"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/proposal"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/resolver"
	"github.com/sejalchopra/dental-ai-chatbot/app/util/mylog"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, llm.NewClient)
	do.Provide(di, proposal.New)
	do.Provide(di, resolver.New)
	do.Provide(di, server.New)

	slog.Info("Service started",
		"addr", cfg.Server.Addr,
		"use_llm", cfg.OpenAI.Enabled)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if err = do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
