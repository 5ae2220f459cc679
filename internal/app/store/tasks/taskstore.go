package taskstore

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
	// ErrNotFound is returned when no task matches the given identifier.
	ErrNotFound    = errors.New("tarefa not found")
	errBadStatus   = errors.New(`status must be "não iniciada"|"em andamento"|"concluída"|"congelada"`)
	errBadPriority = errors.New(`prioridade must be "baixa"|"média"|"alta"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tarefas")}
}

// Create inserts a new task. Status defaults from porcentagem: 0 means
// not started, 100 means done (with data_conclusao stamped), anything
// in between means in progress.
func (s *Store) Create(ctx context.Context, t models.Task) (models.Task, error) {
	t.ID = primitive.NewObjectID()
	t.Nome = normalize.Name(t.Nome)

	if t.Porcentagem < 0 {
		t.Porcentagem = 0
	}
	if t.Porcentagem > 100 {
		t.Porcentagem = 100
	}
	if t.Status == "" {
		switch {
		case t.Porcentagem == 0:
			t.Status = models.TaskNotStarted
		case t.Porcentagem == 100:
			t.Status = models.TaskDone
		default:
			t.Status = models.TaskInProgress
		}
	}
	if !models.ValidTaskStatus(t.Status) {
		return models.Task{}, errBadStatus
	}
	if t.Prioridade != "" && !models.ValidPriority(t.Prioridade) {
		return models.Task{}, errBadPriority
	}
	if t.Condicao == "" {
		t.Condicao = models.ConditionAlways
	}

	now := time.Now().UTC()
	if t.Status == models.TaskDone && t.DataConclusao == nil {
		t.DataConclusao = &now
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// GetByID loads a task by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var t models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByName resolves a task by case-insensitive partial name match.
// Used by the chat command router.
func (s *Store) FindByName(ctx context.Context, nome string) (*models.Task, error) {
	var t models.Task
	filter := bson.M{"nome": primitive.Regex{Pattern: nome, Options: "i"}}
	if err := s.c.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns tasks, optionally filtered by project, sorted by prazo
// then nome.
func (s *Store) List(ctx context.Context, projetoID *primitive.ObjectID) ([]models.Task, error) {
	filter := bson.M{}
	if projetoID != nil {
		filter["projeto_id"] = *projetoID
	}
	opts := options.Find().SetSort(bson.D{{Key: "prazo", Value: 1}, {Key: "nome", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPendingByResponsavel returns a user's unfinished tasks ordered by
// due date. Feeds the AI assistant's context.
func (s *Store) ListPendingByResponsavel(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Task, error) {
	filter := bson.M{
		"responsavel_id": userID,
		"status":         bson.M{"$ne": models.TaskDone},
	}
	opts := options.Find().SetSort(bson.D{{Key: "prazo", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the mutable task fields.
type Update struct {
	Nome          string
	ComoFazer     string
	ProjetoID     primitive.ObjectID
	ResponsavelID primitive.ObjectID
	Status        string
	Prioridade    string
	Porcentagem   int
	DataInicio    *time.Time
	Prazo         *time.Time
}

// UpdateByID applies upd to the task, stamping data_conclusao when the
// status transitions to done.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) error {
	status := normalize.TaskStatus(upd.Status)
	if !models.ValidTaskStatus(status) {
		return errBadStatus
	}
	if upd.Prioridade != "" && !models.ValidPriority(normalize.Priority(upd.Prioridade)) {
		return errBadPriority
	}

	now := time.Now().UTC()
	set := bson.M{
		"nome":           normalize.Name(upd.Nome),
		"como_fazer":     upd.ComoFazer,
		"projeto_id":     upd.ProjetoID,
		"responsavel_id": upd.ResponsavelID,
		"status":         status,
		"prioridade":     normalize.Priority(upd.Prioridade),
		"porcentagem":    upd.Porcentagem,
		"data_inicio":    upd.DataInicio,
		"prazo":          upd.Prazo,
		"updated_at":     now,
	}
	if status == models.TaskDone {
		set["data_conclusao"] = now
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

// SetPrazo updates only the task deadline. Used by the command router.
func (s *Store) SetPrazo(ctx context.Context, id primitive.ObjectID, prazo time.Time) error {
	return s.setFields(ctx, id, bson.M{"prazo": prazo})
}

// SetResponsavel reassigns the task. Used by the command router.
func (s *Store) SetResponsavel(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.setFields(ctx, id, bson.M{"responsavel_id": userID})
}

// SetStatus changes the task status, stamping data_conclusao when moving
// to done. Used by the command router.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	status = normalize.TaskStatus(status)
	if !models.ValidTaskStatus(status) {
		return errBadStatus
	}
	set := bson.M{"status": status}
	if status == models.TaskDone {
		set["data_conclusao"] = time.Now().UTC()
	}
	return s.setFields(ctx, id, set)
}

func (s *Store) setFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a task. Deleting an absent id returns ErrNotFound.
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
