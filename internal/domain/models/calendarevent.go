// internal/domain/models/calendarevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalendarEvent is an agenda entry owned by a funcionário.
// Fim must not precede Inicio; the store rejects inverted ranges.
type CalendarEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResponsavelID primitive.ObjectID `bson:"responsavel_id" json:"responsavel_id"`
	Titulo        string             `bson:"titulo" json:"titulo"`
	Inicio        time.Time          `bson:"inicio" json:"inicio"`
	Fim           time.Time          `bson:"fim" json:"fim"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
