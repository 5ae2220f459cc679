// Package genai wraps the Vertex AI Gemini model behind a small client
// that degrades gracefully when no Google Cloud project is configured.
package genai

import (
	"context"
	"fmt"
	"strings"

	vertex "cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"

	"projetex/internal/domain/models"
)

const modelName = "gemini-2.5-flash"

// DefaultLocation is used when no google_cloud_location is configured.
const DefaultLocation = "us-central1"

// DisabledMessage is the fixed reply for every prompt when no Google
// Cloud project is configured. No external service is contacted.
const DisabledMessage = "O assistente de IA não está configurado neste ambiente. " +
	"Peça ao administrador para definir o projeto do Google Cloud."

// Client talks to Vertex AI. A zero-configured client is valid and
// answers every prompt with DisabledMessage.
type Client struct {
	client *vertex.Client
	log    *zap.Logger
}

// New connects to Vertex AI. An empty project yields a disabled client
// rather than an error, so the API runs fine without GCP credentials.
func New(ctx context.Context, project, location string, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if project == "" {
		logger.Info("generative assistant disabled: google_cloud_project not set")
		return &Client{log: logger}, nil
	}
	if location == "" {
		location = DefaultLocation
	}

	c, err := vertex.NewClient(ctx, project, location)
	if err != nil {
		return nil, fmt.Errorf("vertex client: %w", err)
	}
	logger.Info("generative assistant enabled",
		zap.String("project", project), zap.String("location", location), zap.String("model", modelName))
	return &Client{client: c, log: logger}, nil
}

// Enabled reports whether a Google Cloud project is configured.
func (c *Client) Enabled() bool { return c.client != nil }

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Generate assembles the assistant persona prompt around the user's
// pending tasks and asks Gemini for a conversational reply. When the
// client is disabled it returns DisabledMessage without any call.
func (c *Client) Generate(ctx context.Context, userName string, tasks []models.Task) (string, error) {
	if c.client == nil {
		return DisabledMessage, nil
	}

	model := c.client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, vertex.Text(BuildPrompt(userName, tasks)))
	if err != nil {
		c.log.Warn("vertex ai call failed", zap.Error(err))
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", modelName)
	}
	return text, nil
}

// BuildPrompt renders the master prompt: the 'Ache' persona, the user's
// pending tasks as context, and the instructions for the reply.
func BuildPrompt(userName string, tasks []models.Task) string {
	var b strings.Builder

	b.WriteString("**PERSONA:** Você é o 'Ache', um assistente de produtividade virtual da empresa.\n\n")
	b.WriteString("**TOM E ESTILO:**\n")
	b.WriteString("- Seja sempre polido, positivo e prestativo.\n")
	b.WriteString("- Use uma linguagem clara, simples e amigável. Evite jargões técnicos.\n")
	b.WriteString("- Use quebras de linha e negrito para facilitar a leitura.\n")
	b.WriteString("- Comece sempre se dirigindo ao funcionário pelo nome.\n\n")
	b.WriteString("**CONTEXTO ATUAL:**\n")
	fmt.Fprintf(&b, "- O funcionário '%s' pediu ajuda para priorizar suas tarefas.\n", userName)
	b.WriteString("- Eu já busquei no banco de dados e encontrei as seguintes tarefas pendentes para ele, já ordenadas por prioridade (as mais urgentes primeiro).\n\n")
	b.WriteString("**DADOS (Tarefas do usuário):**\n")
	b.WriteString(FormatTasks(tasks))
	b.WriteString("\n\n**TAREFA:**\n")
	fmt.Fprintf(&b, "Com base nos dados acima, gere uma resposta conversacional para o '%s'. A resposta deve:\n", userName)
	b.WriteString("1. Cumprimentá-lo de forma amigável.\n")
	b.WriteString("2. Explicar que você analisou as tarefas dele.\n")
	b.WriteString("3. Apresentar um plano de ação claro, sugerindo uma ordem para ele atacar as 2 ou 3 tarefas mais críticas.\n")
	b.WriteString("4. Terminar com uma nota de encorajamento.\n\n")
	fmt.Fprintf(&b, "**Agora, gere a sua resposta para o %s:**\n", userName)

	return b.String()
}

// FormatTasks renders pending tasks as prompt context lines.
func FormatTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "Nenhuma tarefa pendente encontrada."
	}

	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s (status: %s", t.Nome, t.Status)
		if t.Prioridade != "" {
			fmt.Fprintf(&b, ", prioridade: %s", t.Prioridade)
		}
		if t.Prazo != nil {
			fmt.Fprintf(&b, ", prazo: %s", t.Prazo.Format("02/01/2006"))
		}
		b.WriteString(")\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func responseText(resp *vertex.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(vertex.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
