// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a funcionário (employee) account.
//
// The senha_hash field holds a bcrypt hash and is never serialized to
// JSON; API responses carry every other field.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome      string             `bson:"nome" json:"nome"`
	Sobrenome string             `bson:"sobrenome" json:"sobrenome"`
	Email     string             `bson:"email" json:"email"` // unique, stored lowercase
	SenhaHash string             `bson:"senha_hash" json:"-"`
	Cargo     string             `bson:"cargo,omitempty" json:"cargo,omitempty"` // role/job title
	Setor     string             `bson:"setor,omitempty" json:"setor,omitempty"` // department

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns "Nome Sobrenome" for display and prompts.
func (u User) FullName() string {
	if u.Sobrenome == "" {
		return u.Nome
	}
	return u.Nome + " " + u.Sobrenome
}
