package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Hasib303/figma-info-gen/internal/figma"
)

// Keyword tables for the backend pass. Every group whose keywords appear in
// a node's lowercased name contributes its tasks; groups are independent.
var backendGroups = []struct {
	keywords []string
	tasks    func(n *figma.Node) []string
}{
	{
		keywords: []string{"list", "feed", "dashboard", "profile"},
		tasks: func(n *figma.Node) []string {
			name := nameOr(n, "data")
			return []string{
				fmt.Sprintf("Create API endpoint for %s", name),
				fmt.Sprintf("Implement database schema for %s", name),
			}
		},
	},
	{
		keywords: []string{"login", "signup", "auth"},
		tasks: func(*figma.Node) []string {
			return []string{
				"Implement user authentication system",
				"Set up session management",
			}
		},
	},
	{
		keywords: []string{"form", "submit", "save", "contact us"},
		tasks: func(*figma.Node) []string {
			return []string{
				"Create data validation middleware",
				"Implement CRUD operations",
			}
		},
	},
	{
		keywords: []string{"chat", "notification", "live"},
		tasks: func(*figma.Node) []string {
			return []string{
				"Set up WebSocket connections",
				"Implement real-time data synchronization",
			}
		},
	},
}

// Keyword tables for the AI pass. minLen guards against trivial partial
// matches on very short names; the thresholds are kept as-is for
// compatibility with existing reports. A zero guard always passes.
var aiGroups = []struct {
	keywords []string
	minLen   int // match only when rune count of the lowercased name >= minLen
	tasks    []string
}{
	{
		keywords: []string{"chat", "chatbot", "messenger"},
		minLen:   3,
		tasks:    []string{"Implement chatbot functionality"},
	},
	{
		keywords: []string{"recommendation", "suggest", "suggestions", "recommend"},
		minLen:   6,
		tasks:    []string{"Implement recommendation engine"},
	},
	{
		keywords: []string{"search", "filter", "find"},
		minLen:   5,
		tasks:    []string{"Implement search algorithm and indexing"},
	},
	{
		keywords: []string{"generate", "ai", "smart", "auto"},
		tasks: []string{
			"Integrate AI content generation API",
			"Implement content moderation system",
		},
	},
	{
		keywords: []string{"upload", "image", "photo", "media"},
		tasks: []string{
			"Implement image processing and optimization",
			"Add content analysis and tagging",
		},
	},
	{
		keywords: []string{"personalize", "custom", "preference"},
		tasks: []string{
			"Create user behavior tracking system",
			"Implement personalization algorithms",
		},
	},
	{
		keywords: []string{"analytics", "metrics", "insights"},
		tasks: []string{
			"Set up analytics data pipeline",
			"Implement data visualization algorithms",
		},
	},
}

// frontendRule labels UI work: components, page-like frames, and the
// interactive children (buttons, form fields) of any visited node.
func frontendRule() Rule {
	return Rule{
		Visit: func(n *figma.Node) []string {
			switch n.Type {
			case figma.NodeComponent:
				return []string{fmt.Sprintf("Create %s component", nameOr(n, "Unknown Component"))}
			case figma.NodeFrame:
				name := nameOr(n, "Unknown Frame")
				if containsAny(strings.ToLower(n.Name), "page", "screen", "view") {
					return []string{fmt.Sprintf("Implement %s page/screen", name)}
				}
			}
			return nil
		},
		VisitChild: func(_, child *figma.Node) []string {
			var tasks []string
			lower := strings.ToLower(child.Name)
			if child.Type == figma.NodeRectangle && strings.Contains(lower, "button") {
				tasks = append(tasks, fmt.Sprintf("Implement %s functionality", nameOr(child, "button")))
			}
			if child.Type == figma.NodeText && containsAny(lower, "input", "field", "form") {
				tasks = append(tasks, fmt.Sprintf("Create form validation for %s", nameOr(child, "field")))
			}
			return tasks
		},
	}
}

// backendRule labels server-side work from name keywords alone.
func backendRule() Rule {
	return Rule{
		Visit: func(n *figma.Node) []string {
			lower := strings.ToLower(n.Name)
			var tasks []string
			for _, g := range backendGroups {
				if containsAny(lower, g.keywords...) {
					tasks = append(tasks, g.tasks(n)...)
				}
			}
			return tasks
		},
	}
}

// aiRule labels AI/ML work from name keywords, with length guards.
func aiRule() Rule {
	return Rule{
		Visit: func(n *figma.Node) []string {
			lower := strings.ToLower(n.Name)
			length := utf8.RuneCountInString(lower)
			var tasks []string
			for _, g := range aiGroups {
				if length < g.minLen {
					continue
				}
				if containsAny(lower, g.keywords...) {
					tasks = append(tasks, g.tasks...)
				}
			}
			return tasks
		},
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func nameOr(n *figma.Node, fallback string) string {
	if n.Name == "" {
		return fallback
	}
	return n.Name
}
