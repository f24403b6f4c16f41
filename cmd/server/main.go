// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	_ "job-posting-service/docs"
	"job-posting-service/internal/config"
	"job-posting-service/internal/logger"
	"job-posting-service/internal/metrics"
	"job-posting-service/internal/repository/mongodb"
	"job-posting-service/internal/service"
	httptransport "job-posting-service/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// @title Job Posting API
// @version 1.0
// @description An MVP-sized REST API over a MongoDB jobs collection.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Setup(cfg.LogLevel)
	metrics.Register()

	// Mongo
	client, err := mongodb.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorf("mongo disconnect: %v", err)
		}
	}()

	// DI
	repo := mongodb.NewJobRepository(client.Database(cfg.Database))
	jobSvc := service.NewJobService(repo)
	handler := httptransport.NewHandler(jobSvc)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: httptransport.Routes(handler),
	}

	go func() {
		log.Infof("server started: addr=%s db=%s", cfg.Addr(), cfg.Database)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}

	log.Info("server stopped")
}
