package chat

import (
	"context"
	"fmt"
	"strings"

	"hrassist/config"
	"hrassist/models"

	"google.golang.org/genai"
)

// Replier is the outbound text-generation collaborator.
type Replier interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// Client wraps the Gemini API. The request is a single formatted string and
// the response is rendered verbatim.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{genai: client, model: cfg.GeminiModel}, nil
}

func (c *Client) Reply(ctx context.Context, prompt string) (string, error) {
	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: 1200,
			Temperature:     genai.Ptr[float32](0.7),
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: genai.Ptr[int32](0),
			},
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// BuildPrompt serializes the full employee and leave tables ahead of the
// user's message. That dump is the only context the model gets.
func BuildPrompt(employees []models.Employee, leaves []models.Leave, message string) string {
	var b strings.Builder

	b.WriteString("Employees:\n")
	if len(employees) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range employees {
		fmt.Fprintf(&b, "- id=%d %s | email=%s | phone=%s | department=%s | position=%s | hired=%s | salary=%.2f | address=%s\n",
			e.ID, e.DisplayName(), e.Email, e.Phone, e.Department, e.Position, e.DateOfHire, e.Salary, e.Address)
	}

	b.WriteString("Leaves:\n")
	if len(leaves) == 0 {
		b.WriteString("(none)\n")
	}
	for _, l := range leaves {
		fmt.Fprintf(&b, "- id=%d %s | %s -> %s | reason=%s | status=%s\n",
			l.ID, l.Employee.DisplayName(), l.StartDate, l.EndDate, l.Reason, l.Status)
	}

	b.WriteString("\nUser query: ")
	b.WriteString(message)
	return b.String()
}
