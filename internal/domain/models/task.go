// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status values.
const (
	TaskNotStarted = "não iniciada"
	TaskInProgress = "em andamento"
	TaskDone       = "concluída"
	TaskFrozen     = "congelada"
)

// Task priority values.
const (
	PriorityLow    = "baixa"
	PriorityMedium = "média"
	PriorityHigh   = "alta"
)

// Task execution conditions carried over from imported spreadsheets.
// "SEMPRE" means the task always applies; A/B/C are conditional tracks.
const (
	ConditionAlways = "SEMPRE"
	ConditionA      = "A"
	ConditionB      = "B"
	ConditionC      = "C"
)

// ValidTaskStatus reports whether s is one of the accepted task status values.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskDone, TaskFrozen:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the accepted priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task belongs to a project and is assigned to a funcionário.
type Task struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjetoID     primitive.ObjectID `bson:"projeto_id" json:"projeto_id"`
	Nome          string             `bson:"nome" json:"nome"`
	ComoFazer     string             `bson:"como_fazer,omitempty" json:"como_fazer,omitempty"` // how-to / description
	ResponsavelID primitive.ObjectID `bson:"responsavel_id" json:"responsavel_id"`
	Status        string             `bson:"status" json:"status"`
	Prioridade    string             `bson:"prioridade,omitempty" json:"prioridade,omitempty"`
	Condicao      string             `bson:"condicao,omitempty" json:"condicao,omitempty"`
	Categoria     string             `bson:"categoria,omitempty" json:"categoria,omitempty"`
	Fase          string             `bson:"fase,omitempty" json:"fase,omitempty"`
	Porcentagem   int                `bson:"porcentagem" json:"porcentagem"` // 0..100

	DataInicio    *time.Time `bson:"data_inicio,omitempty" json:"data_inicio,omitempty"`
	Prazo         *time.Time `bson:"prazo,omitempty" json:"prazo,omitempty"` // due date (data_fim)
	DataConclusao *time.Time `bson:"data_conclusao,omitempty" json:"data_conclusao,omitempty"`

	// Reference document URL captured from spreadsheet hyperlinks.
	DocumentoReferencia string `bson:"documento_referencia,omitempty" json:"documento_referencia,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
