package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/classify"
	"github.com/Hasib303/figma-info-gen/internal/config"
	"github.com/Hasib303/figma-info-gen/internal/figma"
	"github.com/Hasib303/figma-info-gen/internal/report"
)

func main() {
	cfg := config.Load()
	if cfg.FigmaToken == "" {
		fmt.Println("Please set FIGMA_API_TOKEN environment variable")
		return
	}

	figmaURL := promptURL()

	client, err := figma.NewClient(cfg.FigmaToken)
	if err != nil {
		fmt.Printf("Error analyzing Figma project: %v\n", err)
		return
	}

	fileKey, err := figma.ExtractFileKey(figmaURL)
	if err != nil {
		fmt.Printf("Error analyzing Figma project: %v\n", err)
		return
	}

	ctx := context.Background()
	file, err := client.File(ctx, fileKey)
	if err != nil {
		fmt.Printf("Error analyzing Figma project: %v\n", err)
		return
	}

	tasks := classify.Analyze(file.Pages())
	projectName, err := client.ProjectName(ctx, fileKey)
	if err != nil {
		fmt.Printf("Error analyzing Figma project: %v\n", err)
		return
	}

	summary := report.Summary(tasks, projectName)
	fmt.Println(summary)

	if err := os.WriteFile(cfg.SummaryPath, []byte(summary), 0o644); err != nil {
		fmt.Printf("Error saving summary: %v\n", err)
		return
	}
	fmt.Printf("\nSummary saved to %s\n", cfg.SummaryPath)

	if store, err := cfg.ArtifactStore(); err != nil {
		fmt.Printf("Artifact upload skipped: %v\n", err)
	} else if store != nil {
		if err := store.Put(ctx, fileKey, cfg.SummaryPath, []byte(summary), "text/plain; charset=utf-8"); err != nil {
			fmt.Printf("Artifact upload skipped: %v\n", err)
		}
	}
}

func promptURL() string {
	fmt.Print("Enter Figma project URL: ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
