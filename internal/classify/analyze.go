package classify

import "github.com/Hasib303/figma-info-gen/internal/figma"

// TaskCategory holds the classified engineering tasks. Within each slice
// entries are unique and keep the order the traversal first produced them.
type TaskCategory struct {
	Frontend []string
	Backend  []string
	AI       []string
}

// Analyze classifies every node reachable from the given pages into
// frontend, backend and AI task descriptions and deduplicates each
// category independently.
func Analyze(pages []*figma.Node) TaskCategory {
	raw := collect(pages)
	return TaskCategory{
		Frontend: Unique(raw[0]),
		Backend:  Unique(raw[1]),
		AI:       Unique(raw[2]),
	}
}

// collect runs the three category rules in one traversal and returns the
// raw, not yet deduplicated sequences (frontend, backend, ai).
func collect(pages []*figma.Node) [][]string {
	return Run(pages, []Rule{frontendRule(), backendRule(), aiRule()})
}
