// internal/app/features/tarefas/types.go
package tarefas

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"projetex/internal/domain/models"
)

// taskRequest is the create/update payload.
type taskRequest struct {
	Nome          string     `json:"nome"`
	ComoFazer     string     `json:"como_fazer"`
	ProjetoID     string     `json:"projeto_id"`
	ResponsavelID string     `json:"responsavel_id"`
	Status        string     `json:"status"`
	Prioridade    string     `json:"prioridade"`
	Condicao      string     `json:"condicao"`
	Categoria     string     `json:"categoria"`
	Fase          string     `json:"fase"`
	Porcentagem   int        `json:"porcentagem"`
	DataInicio    *time.Time `json:"data_inicio"`
	Prazo         *time.Time `json:"prazo"`
}

func (r taskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ComoFazer, validation.Length(0, 10000)),
		validation.Field(&r.ProjetoID, validation.Required),
		validation.Field(&r.ResponsavelID, validation.Required),
		validation.Field(&r.Status, validation.In(
			models.TaskNotStarted, models.TaskInProgress, models.TaskDone, models.TaskFrozen)),
		validation.Field(&r.Prioridade, validation.In(
			models.PriorityLow, models.PriorityMedium, models.PriorityHigh)),
		validation.Field(&r.Condicao, validation.In(
			models.ConditionAlways, models.ConditionA, models.ConditionB, models.ConditionC)),
		validation.Field(&r.Porcentagem, validation.Min(0), validation.Max(100)),
	)
}
