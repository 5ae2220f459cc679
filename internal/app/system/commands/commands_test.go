// internal/app/system/commands/commands_test.go
package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/domain/models"
)

type fakeProjects struct {
	project *models.Project
	prazo   *time.Time
}

func (f *fakeProjects) FindByName(_ context.Context, nome string) (*models.Project, error) {
	if f.project != nil && strings.Contains(strings.ToLower(f.project.Nome), strings.ToLower(nome)) {
		return f.project, nil
	}
	return nil, projectstore.ErrNotFound
}

func (f *fakeProjects) SetPrazo(_ context.Context, _ primitive.ObjectID, prazo time.Time) error {
	f.prazo = &prazo
	return nil
}

type fakeTasks struct {
	task        *models.Task
	created     *models.Task
	prazo       *time.Time
	responsavel *primitive.ObjectID
	status      string
}

func (f *fakeTasks) FindByName(_ context.Context, nome string) (*models.Task, error) {
	if f.task != nil && strings.Contains(strings.ToLower(f.task.Nome), strings.ToLower(nome)) {
		return f.task, nil
	}
	return nil, taskstore.ErrNotFound
}

func (f *fakeTasks) Create(_ context.Context, t models.Task) (models.Task, error) {
	f.created = &t
	return t, nil
}

func (f *fakeTasks) SetPrazo(_ context.Context, _ primitive.ObjectID, prazo time.Time) error {
	f.prazo = &prazo
	return nil
}

func (f *fakeTasks) SetResponsavel(_ context.Context, _, userID primitive.ObjectID) error {
	f.responsavel = &userID
	return nil
}

func (f *fakeTasks) SetStatus(_ context.Context, _ primitive.ObjectID, status string) error {
	f.status = status
	return nil
}

type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) FindByNameOrEmail(_ context.Context, ref string) (*models.User, error) {
	if f.user != nil && (strings.EqualFold(f.user.Email, ref) ||
		strings.Contains(strings.ToLower(f.user.FullName()), strings.ToLower(ref))) {
		return f.user, nil
	}
	return nil, userstore.ErrNotFound
}

func newTestRouter(p *fakeProjects, tk *fakeTasks, u *fakeUsers) *Router {
	r := NewRouter(p, tk, u, nil)
	r.now = func() time.Time { return time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC) }
	return r
}

func TestHandleProjectDeadline(t *testing.T) {
	p := &fakeProjects{project: &models.Project{ID: primitive.NewObjectID(), Nome: "Expansão Sul"}}
	r := newTestRouter(p, &fakeTasks{}, &fakeUsers{})

	res, err := r.Handle(context.Background(), "muda o prazo do projeto Expansão para daqui dois dias")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || !res.Executado {
		t.Fatalf("res = %+v, want executed", res)
	}
	if p.prazo == nil || !p.prazo.Equal(time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("prazo = %v", p.prazo)
	}
	if !strings.Contains(res.Mensagem, "12/09/2025") {
		t.Errorf("mensagem = %q", res.Mensagem)
	}
}

func TestHandleProjectDeadlineUnknownProject(t *testing.T) {
	r := newTestRouter(&fakeProjects{}, &fakeTasks{}, &fakeUsers{})

	res, err := r.Handle(context.Background(), "muda o prazo do projeto Fantasma para amanhã")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || res.Executado {
		t.Fatalf("res = %+v, want recognized but not executed", res)
	}
	if !strings.Contains(res.Mensagem, "não encontrado") {
		t.Errorf("mensagem = %q", res.Mensagem)
	}
}

func TestHandleTaskDeadlineBadDate(t *testing.T) {
	tk := &fakeTasks{task: &models.Task{ID: primitive.NewObjectID(), Nome: "Revisar escopo"}}
	r := newTestRouter(&fakeProjects{}, tk, &fakeUsers{})

	res, err := r.Handle(context.Background(), "muda o prazo da tarefa Revisar escopo para qualquer hora dessas")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || res.Executado {
		t.Fatalf("res = %+v, want recognized but not executed", res)
	}
	if !strings.Contains(res.Mensagem, "Não entendi a data") {
		t.Errorf("mensagem = %q", res.Mensagem)
	}
	if tk.prazo != nil {
		t.Error("prazo should not have been set")
	}
}

func TestHandleAddTask(t *testing.T) {
	p := &fakeProjects{project: &models.Project{ID: primitive.NewObjectID(), Nome: "Plataforma"}}
	u := &fakeUsers{user: &models.User{ID: primitive.NewObjectID(), Nome: "Ana", Sobrenome: "Souza"}}
	tk := &fakeTasks{}
	r := newTestRouter(p, tk, u)

	res, err := r.Handle(context.Background(),
		"adiciona a tarefa 'desenvolver frontend' no projeto Plataforma, a ana vai ser a responsável")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || !res.Executado {
		t.Fatalf("res = %+v, want executed", res)
	}
	if tk.created == nil {
		t.Fatal("no task created")
	}
	if tk.created.Nome != "desenvolver frontend" {
		t.Errorf("nome = %q", tk.created.Nome)
	}
	if tk.created.ProjetoID != p.project.ID {
		t.Error("task not linked to project")
	}
	if tk.created.ResponsavelID != u.user.ID {
		t.Error("task not assigned to user")
	}
	if tk.created.Prazo == nil || !tk.created.Prazo.Equal(time.Date(2025, 9, 17, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("prazo = %v, want a week out", tk.created.Prazo)
	}
	if !strings.Contains(res.Mensagem, "Ana Souza") {
		t.Errorf("mensagem = %q", res.Mensagem)
	}
}

func TestHandleAssignTask(t *testing.T) {
	tk := &fakeTasks{task: &models.Task{ID: primitive.NewObjectID(), Nome: "Revisar contrato"}}
	u := &fakeUsers{user: &models.User{ID: primitive.NewObjectID(), Nome: "João", Sobrenome: "Lima"}}
	r := newTestRouter(&fakeProjects{}, tk, u)

	res, err := r.Handle(context.Background(), "atribui a tarefa Revisar contrato para o joão lima")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || !res.Executado {
		t.Fatalf("res = %+v, want executed", res)
	}
	if tk.responsavel == nil || *tk.responsavel != u.user.ID {
		t.Error("responsável not updated")
	}
}

func TestHandleMarkStatus(t *testing.T) {
	tk := &fakeTasks{task: &models.Task{ID: primitive.NewObjectID(), Nome: "Montar cronograma"}}
	r := newTestRouter(&fakeProjects{}, tk, &fakeUsers{})

	res, err := r.Handle(context.Background(), "marca a tarefa Montar cronograma como concluida")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res == nil || !res.Executado {
		t.Fatalf("res = %+v, want executed", res)
	}
	if tk.status != models.TaskDone {
		t.Errorf("status = %q, want %q (ascii form should normalize)", tk.status, models.TaskDone)
	}
}

func TestHandleNoMatch(t *testing.T) {
	r := newTestRouter(&fakeProjects{}, &fakeTasks{}, &fakeUsers{})

	res, err := r.Handle(context.Background(), "como estão minhas tarefas desta semana?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res != nil {
		t.Fatalf("res = %+v, want nil for free-form question", res)
	}
}
