package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/app"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/protocol"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/service"
	"github.com/dayanaadylkhanova/pow-wisdom/pkg/config"
	"github.com/dayanaadylkhanova/pow-wisdom/pkg/logger"
)

// fetchOnce prints a single wisdom to stdout.
type fetchOnce struct {
	client *tcp.Client
}

func (f fetchOnce) Run(ctx context.Context) error {
	wisdom, err := f.client.Fetch(ctx)
	if err != nil {
		return err
	}
	fmt.Println(wisdom)
	return nil
}

func main() {
	cfg := config.ParseClient()

	log := logger.NewJSONTo(os.Stderr, logger.LevelFromEnv(cfg.LogLevel))

	initiator := protocol.NewInitiator(log, service.NewPuzzle(nil))
	client := tcp.NewClient(log, cfg.ServerAddr, cfg.DialTimeout, cfg.HandshakeTimeout, initiator)

	if err := app.New(fetchOnce{client: client}).Run(); err != nil {
		log.Error("fetch failed", slog.Any("err", err))
		os.Exit(1)
	}
}
