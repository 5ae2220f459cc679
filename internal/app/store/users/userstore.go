package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projetex/internal/app/system/normalize"
	"projetex/internal/domain/models"
)

var (
	// ErrDuplicateEmail is returned when creating or updating a user with
	// an email that already exists.
	ErrDuplicateEmail = errors.New("a funcionário with this email already exists")
	// ErrNotFound is returned when no user matches the given identifier.
	ErrNotFound = errors.New("funcionário not found")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("funcionarios")}
}

// Create inserts a new user after normalizing fields. The caller is
// responsible for hashing the password into u.SenhaHash.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Nome = normalize.Name(u.Nome)
	u.Sobrenome = normalize.Name(u.Sobrenome)
	u.Email = normalize.Email(u.Email)

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FetchByEmail implements auth.UserFetcher so the bearer middleware loads
// fresh user data on every request.
func (s *Store) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.GetByEmail(ctx, email)
}

// FindByNameOrEmail resolves a free-text reference to a user: exact email
// first, then "nome sobrenome", then nome alone. Matching is
// case-insensitive. Used by the chat command router.
func (s *Store) FindByNameOrEmail(ctx context.Context, ref string) (*models.User, error) {
	if u, err := s.GetByEmail(ctx, ref); err == nil {
		return u, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	parts := bson.A{}
	fields := splitWords(ref)
	if len(fields) >= 2 {
		parts = append(parts, bson.M{
			"nome":      primitive.Regex{Pattern: fields[0], Options: "i"},
			"sobrenome": primitive.Regex{Pattern: fields[len(fields)-1], Options: "i"},
		})
	}
	parts = append(parts, bson.M{"nome": primitive.Regex{Pattern: ref, Options: "i"}})

	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"$or": parts}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users sorted by nome.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, optionsSortNome())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the mutable user fields.
type Update struct {
	Nome      string
	Sobrenome string
	Email     string
	Cargo     string
	Setor     string
}

// UpdateByID applies upd to the user. Returns ErrNotFound if the id does
// not exist and ErrDuplicateEmail if the new email belongs to another
// user.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"nome":       normalize.Name(upd.Nome),
		"sobrenome":  normalize.Name(upd.Sobrenome),
		"email":      normalize.Email(upd.Email),
		"cargo":      upd.Cargo,
		"setor":      upd.Setor,
		"updated_at": time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a user. Deleting an absent id returns ErrNotFound.
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

func optionsSortNome() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "nome", Value: 1}, {Key: "sobrenome", Value: 1}})
}

func splitWords(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}

// Exists reports whether a user with the given id exists.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}
