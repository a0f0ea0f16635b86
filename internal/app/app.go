package app

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/api"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/config"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/services"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/storage"
)

type Application struct {
	cfg     *config.Config
	durable *storage.MongoStore
	server  *api.Server
}

// NewApplication wires the stores, service and HTTP server. A missing
// or unreachable MongoDB is not an error: the server runs on the
// in-memory store and the durable backend is re-probed on every call.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	var durable *storage.MongoStore
	if cfg.MongoURI != "" {
		store, err := storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo store: %w", err)
		}
		durable = store

		if durable.Ready(ctx) {
			log.Println("Connected to MongoDB")
		} else {
			log.Println("MongoDB unreachable, using in-memory storage until it recovers")
		}
	} else {
		log.Println("MONGODB_URI not set, using in-memory storage")
	}

	var durableStore storage.Store
	if durable != nil {
		durableStore = durable
	}
	overlayService := services.NewOverlayService(durableStore, storage.NewMemoryStore())
	server := api.NewServer(cfg, overlayService)

	return &Application{
		cfg:     cfg,
		durable: durable,
		server:  server,
	}, nil
}

func (a *Application) Start() error {
	addr := ":" + strconv.Itoa(a.cfg.HTTPPort)
	log.Printf("HTTP server listening on %s", addr)
	return a.server.Start(addr)
}

func (a *Application) Stop(ctx context.Context) error {
	log.Println("Shutting down server...")
	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}
	if a.durable != nil {
		return a.durable.Close(ctx)
	}
	return nil
}
