// Command streamview-indexes is a one-shot admin tool that creates the
// indexes the overlay collection relies on, notably the descending
// createdAt index behind the newest-first list order.
package main

import (
	"context"
	"log"
	"time"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/config"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI must be set to create indexes")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to initialize mongo store: %v", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Printf("Error closing mongo client: %v", err)
		}
	}()

	if !store.Ready(ctx) {
		log.Fatal("MongoDB is not reachable")
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("Indexes created")
}
