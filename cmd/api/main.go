package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "whitecoat-backend/internal/adapter/http"
	wcmw "whitecoat-backend/internal/adapter/middleware"
	pgrepo "whitecoat-backend/internal/adapter/repository/postgres"
	"whitecoat-backend/internal/config"
	"whitecoat-backend/internal/domain/application"
	"whitecoat-backend/internal/domain/deal"
	"whitecoat-backend/internal/domain/investment"
	"whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/infrastructure/cache"
	"whitecoat-backend/internal/infrastructure/db"
	"whitecoat-backend/internal/logger"
	"whitecoat-backend/internal/mailer"
	applicationuc "whitecoat-backend/internal/usecase/application"
	dashboarduc "whitecoat-backend/internal/usecase/dashboard"
	dealuc "whitecoat-backend/internal/usecase/deal"
	investmentuc "whitecoat-backend/internal/usecase/investment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		zl.Fatal("postgres connect", zap.Error(err))
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&user.PhysicianProfile{},
		&application.FundingApplication{},
		&application.Proposal{},
		&deal.Deal{},
		&investment.Investment{},
		&investment.Distribution{},
	); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect", zap.Error(err))
	}

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.EmailEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sesMailer, err := mailer.NewSESMailer(ctx, cfg.AWSRegion, cfg.EmailFrom)
		cancel()
		if err != nil {
			zl.Fatal("ses mailer", zap.Error(err))
		}
		mail = sesMailer
	}

	// repositories + unit of work
	users := pgrepo.NewUserRepository(gdb)
	applications := pgrepo.NewApplicationRepository(gdb)
	deals := pgrepo.NewDealRepository(gdb)
	investments := pgrepo.NewInvestmentRepository(gdb)
	tx := pgrepo.NewGormUoW(gdb)

	// usecases
	applicationUC := applicationuc.NewUsecase(applications, tx, mail, zl)
	dealUC := dealuc.NewUsecase(deals, investments, users)
	investmentUC := investmentuc.NewUsecase(investments, tx, mail, zl)
	dashboardUC := dashboarduc.NewUsecase(users, applications, investments)

	// handlers
	h := httpadp.NewHandler()
	applicationH := httpadp.NewApplicationHandler(applicationUC)
	dealH := httpadp.NewDealHandler(dealUC)
	investmentH := httpadp.NewInvestmentHandler(investmentUC)
	dashboardH := httpadp.NewDashboardHandler(dashboardUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := wcmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/applications", applicationH.Submit, idemp)
	e.GET("/applications", applicationH.List)
	e.GET("/applications/:application_id", applicationH.Get)
	e.POST("/applications/:application_id/select-proposal", applicationH.SelectProposal, idemp)

	e.GET("/deals", dealH.List)
	e.POST("/deals", dealH.Create, idemp)

	e.POST("/investments", investmentH.Invest, idemp)
	e.GET("/investments", investmentH.List)

	e.GET("/dashboard", dashboardH.Overview)

	addr := ":" + cfg.AppPort
	zl.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zl.Fatal("server", zap.Error(err))
	}
}
