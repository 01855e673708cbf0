package app

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/adapter/cloudinary"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/adapter/handler/http"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/adapter/logger"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/adapter/mongodb"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/adapter/prometheus"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/config"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/services"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	MongoClient *mongo.Client
	HTTPRouter  *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	if err := mongodb.EnsureIndexes(ctx, coll); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	// Media host
	mediaAdapter, err := cloudinary.NewMediaAdapter(
		cfg.Cloudinary.URL,
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
		loggerAdapter,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Cloudinary: %w", err)
	}

	// Temp dir for multipart attachments
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	partRepo := mongodb.NewPartRepository(coll)

	// Services
	partService := services.NewPartService(partRepo, mediaAdapter, loggerAdapter, validate)
	uploadService := services.NewUploadService(mediaAdapter, loggerAdapter)

	// HTTP Handlers
	partHandler := http.NewPartHandler(partService, loggerAdapter, metrics, cfg.Upload.Dir)
	uploadHandler := http.NewUploadHandler(uploadService, loggerAdapter, metrics, cfg.Upload.Dir)

	// Init HTTP router
	router, err := http.NewRouter(cfg.HTTP, partHandler, uploadHandler)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		MongoClient: client,
		HTTPRouter:  router,
	}, nil
}

// Runs the HTTP server; blocks until it stops.
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.MongoClient.Disconnect(ctx); err != nil {
		a.Logger.Error("MongoDB disconnect error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
