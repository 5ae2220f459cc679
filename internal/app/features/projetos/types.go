// internal/app/features/projetos/types.go
package projetos

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"projetex/internal/domain/models"
)

// projectRequest is the create/update payload. Prazo is optional and
// RFC 3339.
type projectRequest struct {
	Nome          string     `json:"nome"`
	Descricao     string     `json:"descricao"`
	ResponsavelID string     `json:"responsavel_id"`
	Status        string     `json:"status"`
	Prazo         *time.Time `json:"prazo"`
}

func (r projectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Descricao, validation.Length(0, 5000)),
		validation.Field(&r.ResponsavelID, validation.Required),
		validation.Field(&r.Status, validation.In(
			models.ProjectPlanned, models.ProjectInProgress, models.ProjectDone, models.ProjectCancelled)),
	)
}
