package projectstore

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
	// ErrNotFound is returned when no project matches the given identifier.
	ErrNotFound = errors.New("projeto not found")
	errBadStatus = errors.New(`status must be "planejado"|"em andamento"|"concluído"|"cancelado"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projetos")}
}

// Create inserts a new project. Status defaults to "planejado".
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = primitive.NewObjectID()
	p.Nome = normalize.Name(p.Nome)
	if p.Status == "" {
		p.Status = models.ProjectPlanned
	}
	if !models.ValidProjectStatus(p.Status) {
		return models.Project{}, errBadStatus
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByID loads a project by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByName resolves a project by case-insensitive partial name match.
// Used by the chat command router.
func (s *Store) FindByName(ctx context.Context, nome string) (*models.Project, error) {
	var p models.Project
	filter := bson.M{"nome": primitive.Regex{Pattern: nome, Options: "i"}}
	if err := s.c.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByExactName loads a project whose nome matches exactly. Used by
// tabular ingestion, where spreadsheet rows name projects literally.
func (s *Store) GetByExactName(ctx context.Context, nome string) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"nome": normalize.Name(nome)}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all projects sorted by nome.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the mutable project fields.
type Update struct {
	Nome          string
	Descricao     string
	ResponsavelID primitive.ObjectID
	Status        string
	Prazo         *time.Time
}

// UpdateByID applies upd to the project.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) error {
	if !models.ValidProjectStatus(upd.Status) {
		return errBadStatus
	}
	set := bson.M{
		"nome":           normalize.Name(upd.Nome),
		"descricao":      upd.Descricao,
		"responsavel_id": upd.ResponsavelID,
		"status":         upd.Status,
		"prazo":          upd.Prazo,
		"updated_at":     time.Now().UTC(),
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

// SetPrazo updates only the project deadline. Used by the command router.
func (s *Store) SetPrazo(ctx context.Context, id primitive.ObjectID, prazo time.Time) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"prazo":      prazo,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a project. Deleting an absent id returns ErrNotFound.
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

// Exists reports whether a project with the given id exists.
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
