package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nurpe/contract-console/internal/auth"
	"github.com/nurpe/contract-console/internal/config"
	"github.com/nurpe/contract-console/internal/db"
	"github.com/nurpe/contract-console/internal/excel"
	httphandler "github.com/nurpe/contract-console/internal/http"
	"github.com/nurpe/contract-console/internal/http/middleware"
	"github.com/nurpe/contract-console/internal/logger"
	"github.com/nurpe/contract-console/internal/pdf"
	"github.com/nurpe/contract-console/internal/repository"
	"github.com/nurpe/contract-console/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	pointRepo := repository.NewPointRepository(database)

	contractService := service.NewContractService(contractRepo, pointRepo)
	pointService := service.NewPointService(pointRepo, contractRepo)
	invoiceService := service.NewInvoiceService(contractRepo, pointRepo, excel.NewGenerator(), pdf.NewGenerator())

	accessTTL, err := time.ParseDuration(cfg.Auth.AccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, accessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(contractService, pointService, invoiceService, tokenIssuer, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contract console service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
