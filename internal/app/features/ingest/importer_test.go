package ingest_test

import (
	"context"
	"strings"
	"testing"

	"projetex/internal/app/features/ingest"
	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/domain/models"
	"projetex/internal/testutil"
)

func newImporter(t *testing.T) (*ingest.Importer, *taskstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tasks := taskstore.New(db)
	imp := ingest.NewImporter(tasks, projectstore.New(db), userstore.New(db))
	return imp, tasks, testutil.NewFixtures(t, db)
}

func TestImporterCreatesTasks(t *testing.T) {
	imp, tasks, fx := newImporter(t)
	ctx := context.Background()
	u := fx.CreateUser(ctx, "Ana", "Souza", "ana@example.com")
	p := fx.CreateProject(ctx, "Expansão Sul", u.ID)

	records := []models.RowRecord{
		{
			"Nome do Projeto":   "Expansão Sul",
			"Email Responsável": "ana@example.com",
			"Nome da Tarefa":    "Montar cronograma",
			"Prioridade":        "alta",
			"Data de Fim":       "15/10/2025",
			"Porcentagem":       "0",
		},
		{
			"Nome do Projeto":   "Expansão Sul",
			"Email Responsável": "ana@example.com",
			"Nome da Tarefa":    "Revisar escopo",
			"Data de Início":    "01/10/2025",
			"Exportação (dias)": "14",
			"Concluído":         "sim",
		},
	}

	report := imp.Run(ctx, records)
	if report.Criadas != 2 {
		t.Fatalf("criadas = %d, erros = %v", report.Criadas, report.Erros)
	}
	if len(report.Erros) != 0 {
		t.Errorf("erros = %v", report.Erros)
	}

	got, err := tasks.List(ctx, &p.ID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}

	byName := map[string]models.Task{}
	for _, tk := range got {
		byName[tk.Nome] = tk
	}

	first := byName["Montar cronograma"]
	if first.Prioridade != models.PriorityHigh {
		t.Errorf("prioridade = %q", first.Prioridade)
	}
	if first.Prazo == nil || first.Prazo.Format("02/01/2006") != "15/10/2025" {
		t.Errorf("prazo = %v", first.Prazo)
	}
	if first.Status != models.TaskNotStarted {
		t.Errorf("status = %q", first.Status)
	}

	second := byName["Revisar escopo"]
	if second.Porcentagem != 100 || second.Status != models.TaskDone {
		t.Errorf("concluded row: porcentagem = %d, status = %q", second.Porcentagem, second.Status)
	}
	if second.Prazo == nil || second.Prazo.Format("02/01/2006") != "15/10/2025" {
		t.Errorf("deadline from início + exportação = %v", second.Prazo)
	}
	if second.DataConclusao == nil {
		t.Error("data_conclusao should be stamped for a concluded import")
	}
}

func TestImporterReportsRowErrors(t *testing.T) {
	imp, _, fx := newImporter(t)
	ctx := context.Background()
	u := fx.CreateUser(ctx, "Ana", "Souza", "ana@example.com")
	fx.CreateProject(ctx, "Expansão Sul", u.ID)

	records := []models.RowRecord{
		{"Email Responsável": "ana@example.com", "Nome da Tarefa": "Sem projeto", "Data de Fim": "15/10/2025"},
		{"Nome do Projeto": "Inexistente", "Email Responsável": "ana@example.com", "Nome da Tarefa": "X", "Data de Fim": "15/10/2025"},
		{"Nome do Projeto": "Expansão Sul", "Email Responsável": "ninguem@example.com", "Nome da Tarefa": "Y", "Data de Fim": "15/10/2025"},
		{"Nome do Projeto": "Expansão Sul", "Email Responsável": "ana@example.com", "Nome da Tarefa": "Sem prazo"},
		{"Nome do Projeto": "Expansão Sul", "Email Responsável": "ana@example.com", "Nome da Tarefa": "Válida", "Data de Fim": "15/10/2025"},
	}

	report := imp.Run(ctx, records)
	if report.Criadas != 1 {
		t.Errorf("criadas = %d, want 1", report.Criadas)
	}
	if len(report.Erros) != 4 {
		t.Fatalf("erros = %v, want 4 entries", report.Erros)
	}
	for i, want := range []string{"Nome do Projeto", "não encontrado", "não encontrado", "Data de Fim"} {
		if !strings.Contains(report.Erros[i], want) {
			t.Errorf("erro[%d] = %q, want mention of %q", i, report.Erros[i], want)
		}
	}
}
