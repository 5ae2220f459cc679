// internal/app/features/ingest/types.go
package ingest

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"projetex/internal/domain/models"
)

// linkRequest is the POST /ingest/link payload.
type linkRequest struct {
	URL string `json:"url"`
}

func (r linkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}

// linksRequest is the POST /ingest/links payload.
type linksRequest struct {
	URLs []string `json:"urls"`
}

func (r linksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URLs, validation.Required, validation.Length(1, 50),
			validation.Each(validation.Required, is.URL)),
	)
}

// ingestResult is what one ingested source produces.
type ingestResult struct {
	Documento models.IngestedDocument `json:"documento"`
	Criadas   int                     `json:"criadas"`
	Erros     []string                `json:"erros"`
}

// linkError marks one failed URL inside a multi-link batch.
type linkError struct {
	URL  string `json:"url"`
	Erro string `json:"erro"`
}

// batchResult is the POST /ingest/links response.
type batchResult struct {
	BatchID    string         `json:"batch_id"`
	Documentos []ingestResult `json:"documentos"`
	Falhas     []linkError    `json:"falhas"`
}
