// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/cictl/internal/infrastructure/banner"
	"github.com/doeshing/cictl/internal/infrastructure/config"
	"github.com/doeshing/cictl/internal/infrastructure/environ"
	"github.com/doeshing/cictl/internal/infrastructure/executor"
	"github.com/doeshing/cictl/internal/infrastructure/history"
	"github.com/doeshing/cictl/internal/pkg/clock"
	"github.com/doeshing/cictl/internal/pkg/logger"
	"github.com/doeshing/cictl/internal/ports"
	"github.com/doeshing/cictl/internal/services"
)

// Container holds the dependency graph of one CLI invocation.
type Container struct {
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Environment    ports.EnvironmentSource
	HistoryStore   ports.HistoryStore
	Logger         ports.Logger

	executor *executor.LocalExecutor
}

// BuildContainer constructs the dependency graph. The config is loaded once
// here to shape the variable table and executor; services re-load it on use
// so `cictl config` edits are picked up without rebuild.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(verbose)

	table := environ.GitHubTable().Override(cfg.Variables)
	env := environ.NewReader(table)

	var store ports.HistoryStore
	if cfg.History.Enabled {
		store = history.NewSQLiteStore()
	}

	return &Container{
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Environment:    env,
		HistoryStore:   store,
		Logger:         log,
		executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
	}, nil
}

// Runner builds a retrying runner. framed selects banner frames versus
// plain colored lines.
func (c *Container) Runner(framed bool) *services.RunnerService {
	return &services.RunnerService{
		Executor: c.executor,
		Sleeper:  clock.RealSleeper{},
		Banner:   banner.NewPrinter(os.Stdout, framed),
		History:  c.HistoryStore,
		Logger:   c.Logger,
	}
}

// Stage builds the pipeline-stage service.
func (c *Container) Stage(framed bool) *services.StageService {
	return &services.StageService{
		Config: c.ConfigProvider,
		Env:    c.Environment,
		Runner: c.Runner(framed),
		Logger: c.Logger,
	}
}

// Doctor builds the diagnostics service.
func (c *Container) Doctor() *services.DoctorService {
	return &services.DoctorService{
		Config:  c.ConfigProvider,
		Env:     c.Environment,
		History: c.HistoryStore,
		Shell:   c.executor.Shell(),
	}
}
