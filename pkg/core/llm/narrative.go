package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Narrator generates free-form markdown analyses (year-over-year comparison,
// company summary). It uses the generative-ai-go client directly rather than
// the Provider interface: narrative output wants a higher temperature and no
// JSON mode, and keeping the client alive across calls saves a handshake per
// request.
type Narrator struct {
	modelName string
	client    *genai.Client
}

// NewNarrator creates a narrative client from the GEMINI_API_KEY env var.
func NewNarrator(ctx context.Context) (*Narrator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Narrator{
		modelName: "gemini-2.0-flash-exp",
		client:    client,
	}, nil
}

// Generate produces a markdown analysis for the given system and user prompts.
func (n *Narrator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	model := n.client.GenerativeModel(n.modelName)
	model.SetTemperature(0.7)

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", systemPrompt, prompt)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("narrative generation returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (n *Narrator) Close() error {
	return n.client.Close()
}
