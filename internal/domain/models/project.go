// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project status values.
const (
	ProjectPlanned    = "planejado"
	ProjectInProgress = "em andamento"
	ProjectDone       = "concluído"
	ProjectCancelled  = "cancelado"
)

// ValidProjectStatus reports whether s is one of the accepted project
// status values.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanned, ProjectInProgress, ProjectDone, ProjectCancelled:
		return true
	}
	return false
}

// Project is a unit of work owned by a funcionário. Tasks reference it
// via projeto_id.
type Project struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome          string             `bson:"nome" json:"nome"`
	Descricao     string             `bson:"descricao,omitempty" json:"descricao,omitempty"`
	ResponsavelID primitive.ObjectID `bson:"responsavel_id" json:"responsavel_id"`
	Status        string             `bson:"status" json:"status"`
	Prazo         *time.Time         `bson:"prazo,omitempty" json:"prazo,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
