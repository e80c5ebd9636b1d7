package llm

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// ErrEmptyResponse means the model returned no usable candidate text.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// GeminiClient is a thin wrapper around the official genai client. It only
// covers the two call shapes the roadmap flow needs: a plain text prompt
// and a text prompt with one inline image.
type GeminiClient struct {
	cli *genai.Client
}

// NewGeminiClient builds a Gemini API client for the given key.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli}, nil
}

// GenerateText sends a plain text prompt and returns the model's text.
func (g *GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return g.generate(ctx, model, []*genai.Part{{Text: prompt}})
}

// DescribeImage sends a prompt plus one inline image payload and returns
// the model's text.
func (g *GeminiClient) DescribeImage(ctx context.Context, model, prompt, mimeType string, image []byte) (string, error) {
	parts := []*genai.Part{
		{Text: prompt},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
	}
	return g.generate(ctx, model, parts)
}

func (g *GeminiClient) generate(ctx context.Context, model string, parts []*genai.Part) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: parts}}, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
