package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"projetex/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a funcionário and returns it with its generated ID.
// The password hash is a placeholder; use the auth package where a real
// login matters.
func (f *Fixtures) CreateUser(ctx context.Context, nome, sobrenome, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Nome:      nome,
		Sobrenome: sobrenome,
		Email:     email,
		SenhaHash: "$2a$12$test-hash-placeholder",
		Cargo:     "analista",
		Setor:     "TI",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("funcionarios").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test funcionário: %v", err)
	}
	return u
}

// CreateProject inserts a projeto owned by responsavel and returns it.
func (f *Fixtures) CreateProject(ctx context.Context, nome string, responsavel primitive.ObjectID) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:            primitive.NewObjectID(),
		Nome:          nome,
		ResponsavelID: responsavel,
		Status:        models.ProjectPlanned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("projetos").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test projeto: %v", err)
	}
	return p
}

// CreateTask inserts a tarefa in the given project and returns it.
func (f *Fixtures) CreateTask(ctx context.Context, nome string, projeto, responsavel primitive.ObjectID) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	tk := models.Task{
		ID:            primitive.NewObjectID(),
		ProjetoID:     projeto,
		Nome:          nome,
		ResponsavelID: responsavel,
		Status:        models.TaskNotStarted,
		Condicao:      models.ConditionAlways,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("tarefas").InsertOne(ctx, tk); err != nil {
		f.t.Fatalf("failed to create test tarefa: %v", err)
	}
	return tk
}
