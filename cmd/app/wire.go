//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/svatek/internal/bootstrap"
	"github.com/yanqian/svatek/internal/domain/dashboard"
	"github.com/yanqian/svatek/internal/domain/nameday"
	"github.com/yanqian/svatek/internal/domain/suntimes"
	"github.com/yanqian/svatek/internal/infra/config"
	"github.com/yanqian/svatek/internal/infra/sunrisesunset"
	"github.com/yanqian/svatek/internal/infra/svatky"
	httpiface "github.com/yanqian/svatek/internal/interface/http"
	"github.com/yanqian/svatek/pkg/logger"
	"github.com/yanqian/svatek/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideNameDayConfig,
		provideNameDayClient,
		provideSunTimesConfig,
		provideSunTimesClient,
		provideDashboardConfig,
		provideStateStore,
		provideRefreshLog,
		metrics.NewRefreshCounters,
		nameday.NewService,
		suntimes.NewService,
		dashboard.NewService,
		dashboard.NewBoard,
		wire.Bind(new(nameday.Client), new(*svatky.Client)),
		wire.Bind(new(suntimes.Client), new(*sunrisesunset.Client)),
		wire.Bind(new(httpiface.Board), new(*dashboard.Board)),
		wire.Bind(new(bootstrap.Refresher), new(*dashboard.Board)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
