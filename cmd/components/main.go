package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

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

	out, err := buildReport(cfg, figmaURL)
	if err != nil {
		msg := fmt.Sprintf("Error analyzing Figma components: %v", err)
		fmt.Println(msg)
		// The report file still gets written so a scripted consumer sees
		// what went wrong instead of a stale run.
		_ = os.WriteFile(cfg.ComponentsPath, []byte("ERROR: "+msg), 0o644)
		return
	}

	fmt.Println(out)
	if err := os.WriteFile(cfg.ComponentsPath, []byte(out), 0o644); err != nil {
		fmt.Printf("Error saving report: %v\n", err)
		return
	}
	fmt.Printf("\nComplete analysis saved to: %s\n", cfg.ComponentsPath)
}

func buildReport(cfg *config.Config, figmaURL string) (string, error) {
	client, err := figma.NewClient(cfg.FigmaToken)
	if err != nil {
		return "", err
	}
	fileKey, err := figma.ExtractFileKey(figmaURL)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	file, err := client.File(ctx, fileKey)
	if err != nil {
		return "", err
	}
	projectName, err := client.ProjectName(ctx, fileKey)
	if err != nil {
		return "", err
	}

	forest := report.BuildForest(file.Pages())
	out := report.ComponentReport(forest, projectName, fileKey)

	if store, err := cfg.ArtifactStore(); err != nil {
		fmt.Printf("Artifact upload skipped: %v\n", err)
	} else if store != nil {
		if err := store.Put(ctx, fileKey, cfg.ComponentsPath, []byte(out), "text/plain; charset=utf-8"); err != nil {
			fmt.Printf("Artifact upload skipped: %v\n", err)
		}
	}
	return out, nil
}

func promptURL() string {
	fmt.Print("Enter Figma project URL: ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
