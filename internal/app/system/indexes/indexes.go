// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup (EnsureSchema hook). Each ensure* function
is idempotent; errors are aggregated so any problem is visible and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureFuncionarios(ctx, db); err != nil {
		problems = append(problems, "funcionarios: "+err.Error())
	}
	if err := ensureProjetos(ctx, db); err != nil {
		problems = append(problems, "projetos: "+err.Error())
	}
	if err := ensureTarefas(ctx, db); err != nil {
		problems = append(problems, "tarefas: "+err.Error())
	}
	if err := ensureAgenda(ctx, db); err != nil {
		problems = append(problems, "agenda: "+err.Error())
	}
	if err := ensureDocumentos(ctx, db); err != nil {
		problems = append(problems, "documentos_ingeridos: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureFuncionarios(ctx context.Context, db *mongo.Database) error {
	// Unique email backs the duplicate-signup 409.
	_, err := db.Collection("funcionarios").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "nome", Value: 1}, {Key: "sobrenome", Value: 1}},
			Options: options.Index().SetName("nome_sobrenome"),
		},
	})
	return err
}

func ensureProjetos(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("projetos").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nome", Value: 1}},
			Options: options.Index().SetName("nome"),
		},
		{
			Keys:    bson.D{{Key: "responsavel_id", Value: 1}},
			Options: options.Index().SetName("responsavel"),
		},
	})
	return err
}

func ensureTarefas(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("tarefas").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "projeto_id", Value: 1}},
			Options: options.Index().SetName("projeto"),
		},
		{
			Keys:    bson.D{{Key: "responsavel_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("responsavel_status"),
		},
		{
			Keys:    bson.D{{Key: "prazo", Value: 1}},
			Options: options.Index().SetName("prazo"),
		},
	})
	return err
}

func ensureAgenda(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("agenda").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "responsavel_id", Value: 1}, {Key: "inicio", Value: 1}},
			Options: options.Index().SetName("responsavel_inicio"),
		},
	})
	return err
}

func ensureDocumentos(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("documentos_ingeridos").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "responsavel_id", Value: 1}, {Key: "enviado_em", Value: -1}},
			Options: options.Index().SetName("responsavel_enviado"),
		},
		{
			Keys:    bson.D{{Key: "batch_id", Value: 1}},
			Options: options.Index().SetName("batch"),
		},
	})
	return err
}
