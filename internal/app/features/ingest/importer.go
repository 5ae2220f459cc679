// internal/app/features/ingest/importer.go
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/normalize"
	"projetex/internal/domain/models"
)

// ImportReport summarizes one tabular import: how many tarefas were
// created and one message per rejected row.
type ImportReport struct {
	Criadas int      `json:"criadas"`
	Erros   []string `json:"erros"`
}

// Importer turns spreadsheet rows into tarefas. Rows reference projects
// by exact name and responsáveis by email; rows that fail to resolve are
// reported, never aborting the batch.
type Importer struct {
	tasks    *taskstore.Store
	projects *projectstore.Store
	users    *userstore.Store
}

// NewImporter builds an Importer over the given stores.
func NewImporter(tasks *taskstore.Store, projects *projectstore.Store, users *userstore.Store) *Importer {
	return &Importer{tasks: tasks, projects: projects, users: users}
}

// Run imports every record. Row numbers in error messages are 1-based
// spreadsheet rows (header is row 1).
func (im *Importer) Run(ctx context.Context, records []models.RowRecord) ImportReport {
	report := ImportReport{Erros: []string{}}

	for i, rec := range records {
		rowNum := i + 2
		if err := im.importRow(ctx, rec); err != nil {
			report.Erros = append(report.Erros, fmt.Sprintf("Linha %d: %s", rowNum, err))
			continue
		}
		report.Criadas++
	}
	return report
}

func (im *Importer) importRow(ctx context.Context, rec models.RowRecord) error {
	nomeProj := field(rec, "Nome do Projeto", "Projeto")
	if nomeProj == "" {
		return errors.New("'Nome do Projeto' é obrigatório.")
	}
	projeto, err := im.projects.GetByExactName(ctx, nomeProj)
	if errors.Is(err, projectstore.ErrNotFound) {
		return fmt.Errorf("Projeto '%s' não encontrado.", nomeProj)
	}
	if err != nil {
		return err
	}

	emailResp := field(rec, "Email Responsável", "Responsável", "Email")
	if emailResp == "" {
		return errors.New("'Email Responsável' é obrigatório.")
	}
	responsavel, err := im.users.GetByEmail(ctx, emailResp)
	if errors.Is(err, userstore.ErrNotFound) {
		return fmt.Errorf("Responsável '%s' não encontrado.", emailResp)
	}
	if err != nil {
		return err
	}

	nomeTarefa := field(rec, "Nome da Tarefa", "Tarefa", "Nome")
	if nomeTarefa == "" {
		return errors.New("'Nome da Tarefa' é obrigatório.")
	}

	porc := parsePercent(rec)

	dataInicio := parseAnyDate(field(rec, "Data de Início"))
	prazo := resolveDeadline(rec, dataInicio)
	if prazo == nil {
		return errors.New("informe 'Data de Fim' ou 'Prazo' (legado) ou 'Data de Início' + 'Exportação (dias)'.")
	}

	t := models.Task{
		Nome:                nomeTarefa,
		ProjetoID:           projeto.ID,
		ResponsavelID:       responsavel.ID,
		ComoFazer:           field(rec, "Como fazer?", "Descrição"),
		Prioridade:          parsePriority(field(rec, "Prioridade")),
		Condicao:            parseCondition(field(rec, "Condição", "Condicao")),
		Categoria:           field(rec, "Categoria", "Classificação"),
		Fase:                field(rec, "Fase"),
		Porcentagem:         porc,
		DataInicio:          dataInicio,
		Prazo:               prazo,
		DocumentoReferencia: field(rec, "Documento de Referência", "Documento referência", "Documento"),
	}

	_, err = im.tasks.Create(ctx, t)
	return err
}

// field returns the first non-empty value among the candidate column
// names, trimmed.
func field(rec models.RowRecord, names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(rec[n]); v != "" {
			return v
		}
	}
	return ""
}

// parsePercent reads "Porcentagem", falling back to the boolean
// "Concluído" column; values clamp to 0..100.
func parsePercent(rec models.RowRecord) int {
	raw := field(rec, "Porcentagem")
	if raw == "" {
		if truthy(field(rec, "Concluído", "Concluida")) {
			return 100
		}
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	porc := int(f)
	if porc < 0 {
		porc = 0
	}
	if porc > 100 {
		porc = 100
	}
	return porc
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "sim", "yes", "y", "concluida", "concluído", "done":
		return true
	}
	return false
}

func parsePriority(v string) string {
	p := normalize.Priority(v)
	if models.ValidPriority(p) {
		return p
	}
	return ""
}

func parseCondition(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case models.ConditionA:
		return models.ConditionA
	case models.ConditionB:
		return models.ConditionB
	case models.ConditionC:
		return models.ConditionC
	default:
		return models.ConditionAlways
	}
}

// resolveDeadline picks the due date: "Data de Fim", then the legacy
// "Prazo" column, then "Data de Início" plus "Exportação (dias)".
func resolveDeadline(rec models.RowRecord, inicio *time.Time) *time.Time {
	if d := parseAnyDate(field(rec, "Data de Fim")); d != nil {
		return d
	}
	if d := parseAnyDate(field(rec, "Prazo")); d != nil {
		return d
	}
	if inicio != nil {
		if dias, err := strconv.Atoi(field(rec, "Exportação (dias)")); err == nil {
			d := inicio.AddDate(0, 0, dias)
			return &d
		}
	}
	return nil
}

// Date layouts spreadsheets actually contain.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02/01/2006 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseAnyDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return &d
		}
	}
	return nil
}
