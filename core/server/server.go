package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-appointment-api/core/cache"
	"go-appointment-api/core/config"
	"go-appointment-api/core/constants"
	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/availability"
	"go-appointment-api/modules/calendar"
	"go-appointment-api/modules/event"
	"go-appointment-api/modules/group"
	"go-appointment-api/modules/notification"
	"go-appointment-api/modules/scheduling"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Run wires the modules together and blocks until shutdown.
func Run() error {
	cfg, err := config.GetSafe()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		return fmt.Errorf("load scheduling timezone %q: %w", cfg.Scheduling.Timezone, err)
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer c.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	mw := middleware.New(c, cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds)

	e := echo.New()
	e.HideBanner = true
	e.Use(mw.RequestLogger())
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	groupSvc := group.Init(e, db, c, mw)
	availabilitySvc := availability.Init(e, db, mw)
	calendarSvc := calendar.Init(e, db, c, mw)
	notificationSvc := notification.Init(db, asynqClient, nil)
	schedulingSvc := scheduling.Init(e, db, mw, groupSvc, availabilitySvc, calendarSvc, loc)
	event.Init(e, db, mw, groupSvc, schedulingSvc, notificationSvc, loc)

	worker := asynq.NewServer(redisOpt, asynq.Config{Concurrency: cfg.Asynq.Concurrency})
	asynqMux := asynq.NewServeMux()
	notificationSvc.RegisterHandlers(asynqMux)
	if err := worker.Start(asynqMux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:StartFailed", "error", err)
		}
	}()
	logger.Info("Server:Run:Started", "addr", addr, "timezone", cfg.Scheduling.Timezone)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Run:ShuttingDown")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
