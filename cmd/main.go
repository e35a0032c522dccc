package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/candidatehub/server/internal/api/http/router"
	httpServer "github.com/candidatehub/server/internal/api/http/server"
	"github.com/candidatehub/server/internal/cache"
	"github.com/candidatehub/server/internal/config"
	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
	"github.com/candidatehub/server/internal/repository/postgres"
	"github.com/candidatehub/server/internal/server"
	"github.com/candidatehub/server/internal/service"
	storage "github.com/candidatehub/server/internal/storage/minio"
	"github.com/candidatehub/server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	profileRepo := postgres.NewProfileRepository(db)
	errorLogRepo := postgres.NewErrorLogRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(userRepo, tokenManager, logger)
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal("failed to seed admin user", "error", err)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	defer redisCache.Close()

	var reportCache service.Cache
	if redisCache.Enabled() {
		reportCache = redisCache
	}

	reportService := service.NewReport(profileRepo, errorLogRepo, reportCache, logger)
	uploadService := service.NewUpload(storageClient, logger)

	r := router.New(
		authService,
		authService,
		reportService,
		uploadService,
		cfg.Upload.MaxFileSize,
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
