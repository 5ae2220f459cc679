package calendarstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projetex/internal/app/system/normalize"
	"projetex/internal/domain/models"
)

var (
	// ErrNotFound is returned when no agenda entry matches the identifier.
	ErrNotFound = errors.New("evento not found")
	// ErrInvertedRange is returned when fim precedes inicio.
	ErrInvertedRange = errors.New("fim must not precede inicio")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("agenda")}
}

// Create inserts a new agenda entry, rejecting inverted datetime ranges.
func (s *Store) Create(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	e.ID = primitive.NewObjectID()
	e.Titulo = normalize.Name(e.Titulo)
	if e.Fim.Before(e.Inicio) {
		return models.CalendarEvent{}, ErrInvertedRange
	}

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.CalendarEvent{}, err
	}
	return e, nil
}

// GetByID loads an agenda entry by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CalendarEvent, error) {
	var e models.CalendarEvent
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns entries, optionally restricted to one owner, ordered by
// start time.
func (s *Store) List(ctx context.Context, responsavelID *primitive.ObjectID) ([]models.CalendarEvent, error) {
	filter := bson.M{}
	if responsavelID != nil {
		filter["responsavel_id"] = *responsavelID
	}
	opts := options.Find().SetSort(bson.D{{Key: "inicio", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CalendarEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the mutable agenda fields.
type Update struct {
	Titulo string
	Inicio time.Time
	Fim    time.Time
}

// UpdateByID applies upd to the entry, rejecting inverted ranges.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) error {
	if upd.Fim.Before(upd.Inicio) {
		return ErrInvertedRange
	}
	set := bson.M{
		"titulo":     normalize.Name(upd.Titulo),
		"inicio":     upd.Inicio,
		"fim":        upd.Fim,
		"updated_at": time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes an entry. Deleting an absent id returns ErrNotFound.
func (s *Store) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
