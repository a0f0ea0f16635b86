package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

const (
	overlayCollection = "overlays"
	pingTimeout       = 2 * time.Second
)

// MongoStore is the durable backend. Connecting is best-effort: the
// driver establishes the session lazily and Ready probes it per call,
// so a database that comes up after the server does is picked up
// without a restart.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type overlayDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	models.Overlay `bson:",inline"`
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to configure mongo client: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(overlayCollection),
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary()) == nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.Overlay, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlays: %w", err)
	}
	defer cursor.Close(ctx)

	var overlays []models.Overlay
	for cursor.Next(ctx) {
		var doc overlayDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode overlay: %w", err)
		}
		overlays = append(overlays, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overlays: %w", err)
	}
	return overlays, nil
}

func (s *MongoStore) Create(ctx context.Context, in models.OverlayInput) (models.Overlay, error) {
	doc := overlayDoc{
		ID:      primitive.NewObjectID(),
		Overlay: models.NewOverlay(in, time.Now().UTC()),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return models.Overlay{}, fmt.Errorf("failed to insert overlay: %w", err)
	}
	return doc.toModel(), nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (models.Overlay, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Overlay{}, ErrNotFound
	}

	var doc overlayDoc
	err = s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Overlay{}, ErrNotFound
	}
	if err != nil {
		return models.Overlay{}, fmt.Errorf("failed to fetch overlay: %w", err)
	}
	return doc.toModel(), nil
}

func (s *MongoStore) Update(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Overlay{}, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: updateDocument(update)}},
		opts,
	)

	var doc overlayDoc
	err = result.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Overlay{}, ErrNotFound
	}
	if err != nil {
		return models.Overlay{}, fmt.Errorf("failed to update overlay: %w", err)
	}
	return doc.toModel(), nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete overlay: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the descending createdAt index backing the
// newest-first list order.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create createdAt index: %w", err)
	}
	return nil
}

func (d overlayDoc) toModel() models.Overlay {
	overlay := d.Overlay
	overlay.ID = d.ID.Hex()
	return overlay
}

// updateDocument flattens a partial update into dotted $set paths so
// untouched sibling fields survive the merge.
func updateDocument(update models.OverlayUpdate) bson.D {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}

	if update.Type != nil {
		set = append(set, bson.E{Key: "type", Value: *update.Type})
	}
	if update.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *update.Content})
	}
	if p := update.Position; p != nil {
		if p.X != nil {
			set = append(set, bson.E{Key: "position.x", Value: *p.X})
		}
		if p.Y != nil {
			set = append(set, bson.E{Key: "position.y", Value: *p.Y})
		}
	}
	if sz := update.Size; sz != nil {
		if sz.Width != nil {
			set = append(set, bson.E{Key: "size.width", Value: *sz.Width})
		}
		if sz.Height != nil {
			set = append(set, bson.E{Key: "size.height", Value: *sz.Height})
		}
	}
	if st := update.Style; st != nil {
		if st.FontSize != nil {
			set = append(set, bson.E{Key: "style.fontSize", Value: *st.FontSize})
		}
		if st.Color != nil {
			set = append(set, bson.E{Key: "style.color", Value: *st.Color})
		}
		if st.BackgroundColor != nil {
			set = append(set, bson.E{Key: "style.backgroundColor", Value: *st.BackgroundColor})
		}
		if st.Opacity != nil {
			set = append(set, bson.E{Key: "style.opacity", Value: *st.Opacity})
		}
	}
	return set
}
