package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/figma"
)

// ComponentInfo mirrors one document node with its hierarchy kept
// explicit. Exactly one ComponentInfo exists per input node.
type ComponentInfo struct {
	Name     string
	Type     string
	ID       string
	Depth    int
	Children []*ComponentInfo
}

// BuildForest converts the top-level pages into ComponentInfo trees.
func BuildForest(pages []*figma.Node) []*ComponentInfo {
	infos := make([]*ComponentInfo, 0, len(pages))
	for _, page := range pages {
		if info := buildTree(page, 0); info != nil {
			infos = append(infos, info)
		}
	}
	return infos
}

func buildTree(n *figma.Node, depth int) *ComponentInfo {
	if n == nil {
		return nil
	}
	info := &ComponentInfo{
		Name:  nameOrUnnamed(n.Name),
		Type:  string(n.Type),
		ID:    n.ID,
		Depth: depth,
	}
	for _, child := range n.Children {
		if ci := buildTree(child, depth+1); ci != nil {
			info.Children = append(info.Children, ci)
		}
	}
	return info
}

// CountNodes counts every node in the forest exactly once, containers
// included.
func CountNodes(forest []*ComponentInfo) int {
	total := 0
	for _, info := range forest {
		total += 1 + CountNodes(info.Children)
	}
	return total
}

// TypeCounts builds a case-sensitive type tag histogram over all nodes.
func TypeCounts(forest []*ComponentInfo) map[string]int {
	counts := make(map[string]int)
	var visit func(infos []*ComponentInfo)
	visit = func(infos []*ComponentInfo) {
		for _, info := range infos {
			counts[info.Type]++
			visit(info.Children)
		}
	}
	visit(forest)
	return counts
}

// TreeText renders the forest as indented lines in pre-order, two spaces
// per nesting level.
func TreeText(forest []*ComponentInfo) []string {
	var lines []string
	var visit func(infos []*ComponentInfo)
	visit = func(infos []*ComponentInfo) {
		for _, info := range infos {
			indent := strings.Repeat("  ", info.Depth)
			lines = append(lines, fmt.Sprintf("%s%s: %s (ID: %s)", indent, info.Type, info.Name, info.ID))
			visit(info.Children)
		}
	}
	visit(forest)
	return lines
}

// ComponentReport renders the full component analysis report: project
// header, per-type statistics sorted by type tag, and the fenced tree.
func ComponentReport(forest []*ComponentInfo, projectName, fileKey string) string {
	var lines []string
	lines = append(lines, "# Figma Component Analysis Report")
	lines = append(lines, fmt.Sprintf("## Project: %s", projectName))
	lines = append(lines, fmt.Sprintf("## File Key: %s", fileKey))
	lines = append(lines, fmt.Sprintf("## Total Components: %d", CountNodes(forest)))
	lines = append(lines, "")

	lines = append(lines, "## Component Type Statistics:")
	counts := TypeCounts(forest)
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("- %s: %d", t, counts[t]))
	}
	lines = append(lines, "")

	lines = append(lines, "## Component Tree:")
	lines = append(lines, "```")
	lines = append(lines, TreeText(forest)...)
	lines = append(lines, "```")

	return strings.Join(lines, "\n")
}

func nameOrUnnamed(name string) string {
	if name == "" {
		return "Unnamed"
	}
	return name
}
