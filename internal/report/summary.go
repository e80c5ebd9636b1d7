package report

import (
	"fmt"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/classify"
)

// Summary renders the classified tasks as the markdown-like analysis
// summary. Empty categories keep their section with a literal
// "No specific ... tasks identified" line.
func Summary(tasks classify.TaskCategory, projectName string) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("# Project Task Analysis Summary - %s", projectName))

	lines = append(lines, "## Frontend Tasks:")
	lines = append(lines, taskLines(tasks.Frontend, "frontend")...)

	lines = append(lines, "\n## Backend Tasks:")
	lines = append(lines, taskLines(tasks.Backend, "backend")...)

	lines = append(lines, "\n## AI Tasks:")
	lines = append(lines, taskLines(tasks.AI, "AI")...)

	return strings.Join(lines, "\n")
}

func taskLines(tasks []string, category string) []string {
	if len(tasks) == 0 {
		return []string{fmt.Sprintf("No specific %s tasks identified", category)}
	}
	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, fmt.Sprintf("Task-%d: %s", i+1, task))
	}
	return lines
}
