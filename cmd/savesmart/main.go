package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/savesmart/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

// buildVersion is set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

//	@title			SaveSmart API
//	@version		1.0
//	@description	Savings goals, activity feed and gamification over a local key-value store.

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		// the zap logger may not be configured yet
		log.Fatal().Err(err).Str("version", buildVersion).Msg("savesmart failed to start")
	}
	zap.L().Info("savesmart started", zap.String("version", buildVersion))

	if err := application.Wait(ctx, stop); err != nil {
		zap.L().Fatal("savesmart stopped with errors", zap.Error(err))
	}
	zap.L().Info("savesmart stopped")
}
