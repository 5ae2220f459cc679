// Package commands recognizes Portuguese chat commands and executes them
// against the stores directly, so routine operations never need the
// generative model.
package commands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/domain/models"
)

// ProjectStore is the slice of the project store the router needs.
type ProjectStore interface {
	FindByName(ctx context.Context, nome string) (*models.Project, error)
	SetPrazo(ctx context.Context, id primitive.ObjectID, prazo time.Time) error
}

// TaskStore is the slice of the task store the router needs.
type TaskStore interface {
	FindByName(ctx context.Context, nome string) (*models.Task, error)
	Create(ctx context.Context, t models.Task) (models.Task, error)
	SetPrazo(ctx context.Context, id primitive.ObjectID, prazo time.Time) error
	SetResponsavel(ctx context.Context, id, userID primitive.ObjectID) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// UserStore resolves free-text references to users.
type UserStore interface {
	FindByNameOrEmail(ctx context.Context, ref string) (*models.User, error)
}

// Result is what a recognized command produces. Executado is false when
// the command was recognized but could not run (unknown project, bad
// date); Mensagem explains either way.
type Result struct {
	Executado bool   `json:"executado"`
	Mensagem  string `json:"mensagem"`
}

// Router matches chat messages against the supported command patterns.
type Router struct {
	projects ProjectStore
	tasks    TaskStore
	users    UserStore
	log      *zap.Logger
	now      func() time.Time
}

func NewRouter(projects ProjectStore, tasks TaskStore, users UserStore, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		projects: projects,
		tasks:    tasks,
		users:    users,
		log:      logger,
		now:      time.Now,
	}
}

var (
	projectDeadlineRe = regexp.MustCompile(`(?i)muda[r]? o prazo do projeto (.+?) para (.+)$`)
	taskDeadlineRe    = regexp.MustCompile(`(?i)muda[r]? o prazo da tarefa (.+?) para (.+)$`)
	addTaskRe         = regexp.MustCompile(`(?i)adiciona[r]? a tarefa ['"]?(.+?)['"]? no projeto (.+?), (.+?) vai ser (?:a|o) responsável`)
	assignTaskRe      = regexp.MustCompile(`(?i)(atribui|muda) (?:a )?tarefa (.+?) para (.+)$`)
	taskStatusRe      = regexp.MustCompile(`(?i)marca[r]? a tarefa (.+?) como (concluída|concluida|em andamento|congelada|não iniciada|nao iniciada)$`)
)

// Handle matches texto against the supported commands and executes the
// first one that fits. Returns (nil, nil) when no pattern matched, so
// the caller can fall through to the generative model.
func (r *Router) Handle(ctx context.Context, texto string) (*Result, error) {
	texto = strings.TrimSpace(texto)

	if m := projectDeadlineRe.FindStringSubmatch(texto); m != nil {
		return r.changeProjectDeadline(ctx, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}
	if m := taskDeadlineRe.FindStringSubmatch(texto); m != nil {
		return r.changeTaskDeadline(ctx, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}
	if m := addTaskRe.FindStringSubmatch(texto); m != nil {
		return r.addTask(ctx, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
	}
	if m := assignTaskRe.FindStringSubmatch(texto); m != nil {
		return r.assignTask(ctx, strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
	}
	if m := taskStatusRe.FindStringSubmatch(texto); m != nil {
		return r.markTaskStatus(ctx, strings.TrimSpace(m[1]), strings.ToLower(m[2]))
	}

	return nil, nil
}

// "muda o prazo do projeto X para daqui dois dias"
func (r *Router) changeProjectDeadline(ctx context.Context, nomeProj, prazoTxt string) (*Result, error) {
	proj, err := r.projects.FindByName(ctx, nomeProj)
	if errors.Is(err, projectstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Projeto '%s' não encontrado.", nomeProj)}, nil
	}
	if err != nil {
		return nil, err
	}

	prazo, ok := ParseDate(prazoTxt, r.now())
	if !ok {
		return &Result{Mensagem: fmt.Sprintf("Não entendi a data '%s'.", prazoTxt)}, nil
	}

	if err := r.projects.SetPrazo(ctx, proj.ID, prazo); err != nil {
		return nil, err
	}
	r.log.Info("command: project deadline changed",
		zap.String("projeto", proj.Nome), zap.Time("prazo", prazo))
	return &Result{
		Executado: true,
		Mensagem:  fmt.Sprintf("Prazo do projeto '%s' atualizado para %s.", proj.Nome, prazo.Format("02/01/2006")),
	}, nil
}

// "muda o prazo da tarefa ABC para amanhã"
func (r *Router) changeTaskDeadline(ctx context.Context, nomeTarefa, prazoTxt string) (*Result, error) {
	t, err := r.tasks.FindByName(ctx, nomeTarefa)
	if errors.Is(err, taskstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Tarefa '%s' não encontrada.", nomeTarefa)}, nil
	}
	if err != nil {
		return nil, err
	}

	prazo, ok := ParseDate(prazoTxt, r.now())
	if !ok {
		return &Result{Mensagem: fmt.Sprintf("Não entendi a data '%s'.", prazoTxt)}, nil
	}

	if err := r.tasks.SetPrazo(ctx, t.ID, prazo); err != nil {
		return nil, err
	}
	return &Result{
		Executado: true,
		Mensagem:  fmt.Sprintf("Prazo da tarefa '%s' atualizado para %s.", t.Nome, prazo.Format("02/01/2006")),
	}, nil
}

// "adiciona a tarefa 'desenvolver frontend' no projeto Y, a ana vai ser a responsável"
func (r *Router) addTask(ctx context.Context, nomeTarefa, nomeProj, nomeResp string) (*Result, error) {
	proj, err := r.projects.FindByName(ctx, nomeProj)
	if errors.Is(err, projectstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Projeto '%s' não encontrado.", nomeProj)}, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := r.users.FindByNameOrEmail(ctx, nomeResp)
	if errors.Is(err, userstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Responsável '%s' não encontrado.", nomeResp)}, nil
	}
	if err != nil {
		return nil, err
	}

	prazo := r.now().AddDate(0, 0, 7)
	_, err = r.tasks.Create(ctx, models.Task{
		Nome:          nomeTarefa,
		ProjetoID:     proj.ID,
		ResponsavelID: user.ID,
		Prazo:         &prazo,
		Status:        models.TaskNotStarted,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Executado: true,
		Mensagem:  fmt.Sprintf("Tarefa '%s' criada no projeto '%s' e atribuída a %s.", nomeTarefa, proj.Nome, user.FullName()),
	}, nil
}

// "atribui a tarefa X para o joão" | "muda tarefa X para maria"
func (r *Router) assignTask(ctx context.Context, nomeTarefa, nomeResp string) (*Result, error) {
	t, err := r.tasks.FindByName(ctx, nomeTarefa)
	if errors.Is(err, taskstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Tarefa '%s' não encontrada.", nomeTarefa)}, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := r.users.FindByNameOrEmail(ctx, nomeResp)
	if errors.Is(err, userstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Responsável '%s' não encontrado.", nomeResp)}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.tasks.SetResponsavel(ctx, t.ID, user.ID); err != nil {
		return nil, err
	}
	return &Result{
		Executado: true,
		Mensagem:  fmt.Sprintf("Responsável da tarefa '%s' atualizado para %s.", t.Nome, user.FullName()),
	}, nil
}

// "marca a tarefa X como concluída"
func (r *Router) markTaskStatus(ctx context.Context, nomeTarefa, statusTxt string) (*Result, error) {
	switch statusTxt {
	case "concluida":
		statusTxt = models.TaskDone
	case "nao iniciada":
		statusTxt = models.TaskNotStarted
	}

	t, err := r.tasks.FindByName(ctx, nomeTarefa)
	if errors.Is(err, taskstore.ErrNotFound) {
		return &Result{Mensagem: fmt.Sprintf("Tarefa '%s' não encontrada.", nomeTarefa)}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.tasks.SetStatus(ctx, t.ID, statusTxt); err != nil {
		return nil, err
	}
	return &Result{
		Executado: true,
		Mensagem:  fmt.Sprintf("Tarefa '%s' marcada como %s.", t.Nome, statusTxt),
	}, nil
}
