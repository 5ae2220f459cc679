// internal/app/features/agenda/types.go
package agenda

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// eventRequest is the create/update payload. Inicio and fim are RFC 3339
// datetimes; the range check (fim not before inicio) lives in the store.
type eventRequest struct {
	Titulo string    `json:"titulo"`
	Inicio time.Time `json:"inicio"`
	Fim    time.Time `json:"fim"`
}

func (r eventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Inicio, validation.Required),
		validation.Field(&r.Fim, validation.Required),
	)
}
