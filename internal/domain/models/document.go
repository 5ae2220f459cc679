// internal/domain/models/document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingested document source types.
const (
	SourceFile = "arquivo"
	SourceLink = "link"
)

// RowRecord is one tabular row keyed by its header column names.
type RowRecord map[string]string

// IngestedDocument stores the normalized result of ingesting an uploaded
// file or a fetched link, owned by the requesting funcionário.
//
// Tabular sources (CSV/XLSX) populate Registros with one record per data
// row; document and link sources populate Conteudo with extracted text.
type IngestedDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TipoFonte string             `bson:"tipo_fonte" json:"tipo_fonte"` // arquivo | link
	Origem    string             `bson:"origem" json:"origem"`         // filename or URL
	Conteudo  string             `bson:"conteudo,omitempty" json:"conteudo,omitempty"`
	Registros []RowRecord        `bson:"registros,omitempty" json:"registros,omitempty"`

	// BatchID groups documents created by one upload or one multi-link
	// request.
	BatchID string `bson:"batch_id" json:"batch_id"`

	ResponsavelID primitive.ObjectID `bson:"responsavel_id" json:"responsavel_id"`
	EnviadoEm     time.Time          `bson:"enviado_em" json:"enviado_em"`
}
