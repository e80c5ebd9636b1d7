package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hasib303/figma-info-gen/internal/classify"
)

func TestSummaryRendersAllSections(t *testing.T) {
	tasks := classify.TaskCategory{
		Frontend: []string{"Create Card component", "Implement Home page/screen"},
		Backend:  []string{"Implement user authentication system"},
	}

	out := Summary(tasks, "Demo Project")

	require.True(t, strings.HasPrefix(out, "# Project Task Analysis Summary - Demo Project\n"))
	require.Contains(t, out, "## Frontend Tasks:\nTask-1: Create Card component\nTask-2: Implement Home page/screen")
	require.Contains(t, out, "## Backend Tasks:\nTask-1: Implement user authentication system")
	require.Contains(t, out, "## AI Tasks:\nNo specific AI tasks identified")
}

func TestSummaryEmptyCategories(t *testing.T) {
	out := Summary(classify.TaskCategory{}, "Empty Project")

	require.Contains(t, out, "No specific frontend tasks identified")
	require.Contains(t, out, "No specific backend tasks identified")
	require.Contains(t, out, "No specific AI tasks identified")
}

// Rendering and re-parsing the Task-N lines recovers the original
// sequences in order.
func TestSummaryRoundTrip(t *testing.T) {
	tasks := classify.TaskCategory{
		Frontend: []string{"Create Card component", "Implement Buy Button functionality"},
		Backend:  []string{"Create API endpoint for Feed", "Implement CRUD operations"},
		AI:       []string{"Implement chatbot functionality"},
	}

	parsed := parseSummary(Summary(tasks, "Round Trip"))

	require.Equal(t, tasks.Frontend, parsed.Frontend)
	require.Equal(t, tasks.Backend, parsed.Backend)
	require.Equal(t, tasks.AI, parsed.AI)
}

func parseSummary(s string) classify.TaskCategory {
	var out classify.TaskCategory
	var current *[]string
	for _, line := range strings.Split(s, "\n") {
		switch {
		case strings.HasPrefix(line, "## Frontend Tasks:"):
			current = &out.Frontend
		case strings.HasPrefix(line, "## Backend Tasks:"):
			current = &out.Backend
		case strings.HasPrefix(line, "## AI Tasks:"):
			current = &out.AI
		case strings.HasPrefix(line, "Task-") && current != nil:
			if _, task, ok := strings.Cut(line, ": "); ok {
				*current = append(*current, task)
			}
		}
	}
	return out
}
