package documentstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projetex/internal/domain/models"
)

// ErrNotFound is returned when no ingested document matches the identifier.
var ErrNotFound = errors.New("documento not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("documentos_ingeridos")}
}

// Insert stores one ingested document, stamping the upload time.
func (s *Store) Insert(ctx context.Context, d models.IngestedDocument) (models.IngestedDocument, error) {
	d.ID = primitive.NewObjectID()
	if d.EnviadoEm.IsZero() {
		d.EnviadoEm = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.IngestedDocument{}, err
	}
	return d, nil
}

// GetByID loads an ingested document by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.IngestedDocument, error) {
	var d models.IngestedDocument
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByResponsavel returns a user's ingested documents, newest first.
// A limit of 0 returns everything.
func (s *Store) ListByResponsavel(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.IngestedDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "enviado_em", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"responsavel_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.IngestedDocument
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByBatch returns how many documents were stored under one batch id.
func (s *Store) CountByBatch(ctx context.Context, batchID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"batch_id": batchID})
}
