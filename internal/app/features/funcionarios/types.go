// internal/app/features/funcionarios/types.go
package funcionarios

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// createRequest is the signup payload. Senha arrives in the clear and is
// hashed before anything is stored.
type createRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Cargo     string `json:"cargo"`
	Setor     string `json:"setor"`
}

func (r createRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Sobrenome, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		// bcrypt truncates past 72 bytes, so longer passwords are rejected
		validation.Field(&r.Senha, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Cargo, validation.Length(0, 120)),
		validation.Field(&r.Setor, validation.Length(0, 120)),
	)
}

// updateRequest carries the mutable profile fields. Passwords change via
// a dedicated flow, not here.
type updateRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Cargo     string `json:"cargo"`
	Setor     string `json:"setor"`
}

func (r updateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Sobrenome, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Cargo, validation.Length(0, 120)),
		validation.Field(&r.Setor, validation.Length(0, 120)),
	)
}
