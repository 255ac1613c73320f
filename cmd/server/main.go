package main

import (
	"log/slog"
	"os"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/adapter/quote"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/app"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/protocol"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/service"
	"github.com/dayanaadylkhanova/pow-wisdom/pkg/config"
	"github.com/dayanaadylkhanova/pow-wisdom/pkg/logger"
)

func main() {
	cfg := config.Parse()

	log := logger.NewJSON(logger.LevelFromEnv(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.Any("err", err))
		os.Exit(2)
	}

	pow := service.NewPuzzle(service.GlobalSource)
	qt := quote.NewStatic()
	responder := protocol.NewResponder(log, pow, qt, cfg.Difficulty())
	srv := tcp.NewServer(log, cfg.ListenAddr, cfg.HandshakeTimeout, cfg.ShutdownWait, responder)

	if err := app.New(srv).Run(); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
