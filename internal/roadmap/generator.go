package roadmap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/imagedir"
)

const describePrompt = "Generate a summary describing the UI components, layout, and potential interactions."

const synthesisPromptFormat = `Based on the following analysis of UI screenshots from a Figma project, please generate a comprehensive development task list for frontend, backend, and AI(if any).

Here are the analyses of the individual screens:
%s

Please provide a task list in the following structure:
1.  Frontend Tasks: List of tasks for frontend development.
2.  Backend Tasks: List of tasks for backend development.
3.  AI Tasks: List of tasks for AI development.

For example, for AI tasks the list will be like this:
1. Game Outcome Prediction Model

2. Top Performer Prediction
For each team, predict top 2 batters & 2 pitchers

3. Player Position Mapping
Given team + lineup, assign field positions

4. Head-to-Head Record Generator

5. Natural Language Generator
Turn model outputs into friendly explanations`

// errorPlaceholder substitutes the description of an image whose analysis
// call failed, so one bad image does not abort the batch.
const errorPlaceholder = "Error during analysis."

// ErrNoImages means the screenshots directory holds no image files.
var ErrNoImages = errors.New("roadmap: no images found")

// LLM is the subset of the Gemini client the generator needs.
type LLM interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	DescribeImage(ctx context.Context, model, prompt, mimeType string, image []byte) (string, error)
}

// ImageAnalysis pairs a screenshot with the model's description of it.
type ImageAnalysis struct {
	Image       string
	Description string
}

// Generator synthesizes a development roadmap from screenshot analyses.
type Generator struct {
	LLM            LLM
	Images         *imagedir.Dir
	VisionModel    string
	SynthesisModel string
}

// Generate describes every screenshot, then synthesizes the roadmap text.
// Per-image failures are replaced with a placeholder description; a failed
// synthesis call becomes an error string in place of the roadmap.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	analyses, err := g.AnalyzeImages(ctx)
	if err != nil {
		return "", err
	}
	return g.Synthesize(ctx, analyses), nil
}

// AnalyzeImages runs the per-image description calls. Only an empty or
// unreadable directory is an error; individual model failures are not.
func (g *Generator) AnalyzeImages(ctx context.Context) ([]ImageAnalysis, error) {
	paths, err := g.Images.List()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, g.Images.Root())
	}

	analyses := make([]ImageAnalysis, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		fmt.Printf("Analyzing image: %s...\n", name)
		analyses = append(analyses, ImageAnalysis{
			Image:       name,
			Description: g.describe(ctx, path, name),
		})
	}
	return analyses, nil
}

func (g *Generator) describe(ctx context.Context, path, name string) string {
	data, err := g.Images.Read(path)
	if err != nil {
		fmt.Printf("Error analyzing image %s: %v\n", name, err)
		return errorPlaceholder
	}
	desc, err := g.LLM.DescribeImage(ctx, g.VisionModel, describePrompt, mimeType(path), data)
	if err != nil {
		fmt.Printf("Error analyzing image %s: %v\n", name, err)
		return errorPlaceholder
	}
	return desc
}

// Synthesize builds the final roadmap from the per-image analyses.
func (g *Generator) Synthesize(ctx context.Context, analyses []ImageAnalysis) string {
	fmt.Println("\nSynthesizing project roadmap...")

	entries := make([]string, 0, len(analyses))
	for _, a := range analyses {
		entries = append(entries, fmt.Sprintf("- Image: %s\n  Description: %s", a.Image, a.Description))
	}
	prompt := fmt.Sprintf(synthesisPromptFormat, strings.Join(entries, "\n"))

	roadmap, err := g.LLM.GenerateText(ctx, g.SynthesisModel, prompt)
	if err != nil {
		return fmt.Sprintf("Error generating roadmap: %v", err)
	}
	return roadmap
}

func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}
