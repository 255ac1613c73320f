package app

import (
	"context"
	"os/signal"
	"syscall"
)

// App runs one Runner until it returns or the process gets SIGINT/SIGTERM.
type App struct {
	runner Runner
}

func New(runner Runner) *App {
	return &App{runner: runner}
}

func (a *App) Run() error {
	return a.RunContext(context.Background())
}

func (a *App) RunContext(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.runner.Run(ctx)
}
