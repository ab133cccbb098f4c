package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vanari-rv/caravan-configurator/api/routes"
	"github.com/vanari-rv/caravan-configurator/internal/auth"
	"github.com/vanari-rv/caravan-configurator/internal/categories"
	"github.com/vanari-rv/caravan-configurator/internal/colors"
	"github.com/vanari-rv/caravan-configurator/internal/configurator"
	"github.com/vanari-rv/caravan-configurator/internal/modelimages"
	"github.com/vanari-rv/caravan-configurator/internal/options"
	"github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/internal/pdfrender"
	"github.com/vanari-rv/caravan-configurator/internal/themes"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	"github.com/vanari-rv/caravan-configurator/internal/vehiclemodels"
	"github.com/vanari-rv/caravan-configurator/pkg/config"
	"github.com/vanari-rv/caravan-configurator/pkg/db"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/metrics"
	"github.com/vanari-rv/caravan-configurator/pkg/migrate"
	"github.com/vanari-rv/caravan-configurator/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	conn := dbClient.DB()

	categoriesSvc := categories.NewService(categories.NewRepository(conn), logg)
	colorsSvc := colors.NewService(colors.NewRepository(conn), logg)
	themesSvc := themes.NewService(themes.NewRepository(conn), logg)
	modelsSvc := vehiclemodels.NewService(vehiclemodels.NewRepository(conn), logg)
	optionsSvc := options.NewService(options.NewRepository(conn), logg)
	modelImagesSvc := modelimages.NewService(modelimages.NewRepository(conn), logg)
	ordersSvc := orders.NewService(orders.NewRepository(conn), logg)

	authSvc := auth.NewService(
		cfg.JWT,
		cfg.ResetToken,
		cfg.RateLimit,
		cfg.App.FrontendURL,
		redisClient,
		auth.NewLogMailer(logg),
		logg,
	)

	configuratorSvc := configurator.NewService(
		cfg.Configurator,
		cfg.App.FrontendURL,
		redisClient,
		modelsSvc,
		themesSvc,
		colorsSvc,
		optionsSvc,
		modelImagesSvc,
		ordersSvc,
		logg,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			Metrics:      metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
			DB:           dbClient,
			Redis:        redisClient,
			Auth:         authSvc,
			Categories:   categoriesSvc,
			Colors:       colorsSvc,
			Themes:       themesSvc,
			Models:       modelsSvc,
			Options:      optionsSvc,
			ModelImages:  modelImagesSvc,
			Orders:       ordersSvc,
			Configurator: configuratorSvc,
			Uploads:      uploads.NewService(cfg.Uploads, logg),
			PDF:          pdfrender.NewService(cfg.PDF, logg),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
