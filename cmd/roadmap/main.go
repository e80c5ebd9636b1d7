package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/config"
	"github.com/Hasib303/figma-info-gen/internal/figma"
	"github.com/Hasib303/figma-info-gen/internal/imagedir"
	"github.com/Hasib303/figma-info-gen/internal/llm"
	"github.com/Hasib303/figma-info-gen/internal/roadmap"
	"github.com/Hasib303/figma-info-gen/internal/screenshot"
)

func main() {
	cfg := config.Load()
	if cfg.FigmaToken == "" {
		fmt.Println("Error: FIGMA_API_TOKEN environment variable not set.")
		return
	}
	if cfg.GeminiAPIKey == "" {
		fmt.Println("Error: GEMINI_API_KEY environment variable not set.")
		return
	}

	figmaURL := promptURL()

	fileKey, err := figma.ExtractFileKey(figmaURL)
	if err != nil {
		fmt.Printf("Error: could not extract file key from the provided URL: %v\n", err)
		return
	}

	client, err := figma.NewClient(cfg.FigmaToken)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	store, err := cfg.ArtifactStore()
	if err != nil {
		fmt.Printf("Artifact upload disabled: %v\n", err)
	}

	ctx := context.Background()

	fmt.Println("Starting Figma Screenshot Process ---")
	fmt.Printf("Fetching Figma file: %s\n", fileKey)
	capturer := &screenshot.Capturer{Client: client, Store: store, OutDir: cfg.ScreenshotsDir}
	saved, err := capturer.CaptureAll(ctx, fileKey)
	if err != nil {
		fmt.Printf("Error fetching Figma file: %v\n", err)
		return
	}
	fmt.Printf("\nScreenshot process complete. %d screenshots saved in the '%s' directory.\n",
		len(saved), cfg.ScreenshotsDir)

	fmt.Println("\nStarting Roadmap Generation Process ---")
	images, err := imagedir.Open(cfg.ScreenshotsDir)
	if err != nil {
		fmt.Printf("Error: directory '%s' not found.\n", cfg.ScreenshotsDir)
		return
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Error creating Gemini client: %v\n", err)
		return
	}

	gen := &roadmap.Generator{
		LLM:            gemini,
		Images:         images,
		VisionModel:    cfg.VisionModel,
		SynthesisModel: cfg.SynthesisModel,
	}
	text, err := gen.Generate(ctx)
	if err != nil {
		fmt.Printf("Error generating roadmap: %v\n", err)
		return
	}

	fmt.Println("\n--- Generated Development Roadmap ---")
	fmt.Println(text)

	if err := os.WriteFile(cfg.RoadmapPath, []byte(text), 0o644); err != nil {
		fmt.Printf("Error saving roadmap: %v\n", err)
		return
	}
	if store != nil {
		if err := store.Put(ctx, fileKey, cfg.RoadmapPath, []byte(text), "text/plain; charset=utf-8"); err != nil {
			fmt.Printf("Artifact upload skipped: %v\n", err)
		}
	}

	fmt.Println("\n--- Development Roadmap Generation Complete ---")
	fmt.Printf("The roadmap has been saved to: %s\n", cfg.RoadmapPath)
}

func promptURL() string {
	fmt.Print("Enter Figma project URL: ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
