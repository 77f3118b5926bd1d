package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/internal/cache"
	"github.com/supportly-beer/supportly-backend/internal/chat"
	"github.com/supportly-beer/supportly-backend/internal/config"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	chatgrpc "github.com/supportly-beer/supportly-backend/internal/grpc"
	"github.com/supportly-beer/supportly-backend/internal/handler"
	"github.com/supportly-beer/supportly-backend/internal/mail"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/search"
	"github.com/supportly-beer/supportly-backend/internal/seed"
	"github.com/supportly-beer/supportly-backend/internal/service"
	"github.com/supportly-beer/supportly-backend/internal/twofa"
	"github.com/supportly-beer/supportly-backend/pkg/database"
	"github.com/supportly-beer/supportly-backend/pkg/jwt"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	"github.com/supportly-beer/supportly-backend/pkg/middleware"
	"github.com/supportly-beer/supportly-backend/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log.Init(log.Config{Level: cfg.Log.Level, ServiceName: "supportly-backend"})
	logger := log.L()

	if cfg.JWT.Secret == "" {
		logger.Fatal().Msg("jwt.secret must be configured")
	}

	// Database
	db, err := database.New(&database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = database.AutoMigrate(db,
		&domain.RoleModel{},
		&domain.UserModel{},
		&domain.TicketModel{},
		&domain.TicketMessageModel{},
		&domain.FaqModel{},
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Repositories
	userRepo := repository.NewGormUserRepository(db)
	roleRepo := repository.NewGormRoleRepository(db)
	ticketRepo := repository.NewGormTicketRepository(db)
	faqRepo := repository.NewGormFaqRepository(db)

	if err := seed.Run(context.Background(), userRepo, roleRepo, cfg.Seed.AdminEmail); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	// Search index
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Search.Addresses,
		Username:  cfg.Search.Username,
		Password:  cfg.Search.Password,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create elasticsearch client")
	}
	ticketIndex := search.NewESTicketIndex(esClient, cfg.Search.Index)

	// Search cache
	searchCache, err := cache.NewRedisSearchCache(cfg.Redis, cfg.Cache.Prefix)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer searchCache.Close()

	// Blob storage
	blobs, err := newStorage(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise blob storage")
	}

	// Services
	tokens := jwt.NewManager(cfg.JWT.Secret, "supportly-backend", cfg.JWT.AccessTokenTTL)
	mailer := mail.NewSMTPMailer(cfg.Mail)
	twofaGen := twofa.NewGenerator(cfg.JWT.TwofaIssuerName)

	userService := service.NewUserService(userRepo, roleRepo, blobs, twofaGen)
	authService := service.NewAuthService(userRepo, roleRepo, tokens, mailer, cfg.JWT, cfg.Server.FrontendURL)
	ticketService := service.NewTicketService(ticketRepo, userRepo, ticketIndex, searchCache, cfg.Cache.TTL)
	faqService := service.NewFaqService(faqRepo)

	// Live chat
	registry := chat.NewRegistry(ticketService)
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := chatgrpc.StartGRPCServer(grpcAddr, registry, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start chat grpc server")
	}
	defer grpcServer.GracefulStop()

	// HTTP API
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(log.GinMiddleware(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Storage.Backend == "local" {
		r.Static("/blobs", cfg.Storage.Local.BasePath)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokens, userService)
	httpHandler := handler.NewHandler(authService, userService, ticketService, faqService, authMiddleware)
	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("address", addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
}

func newStorage(cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Backend {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3Storage(ctx, cfg.S3)
	default:
		return storage.NewLocalStorage(cfg.Local)
	}
}
