package classify

import (
	"reflect"
	"testing"

	"github.com/Hasib303/figma-info-gen/internal/figma"
)

func node(id, name string, typ figma.NodeType, children ...*figma.Node) *figma.Node {
	return &figma.Node{ID: id, Name: name, Type: typ, Children: children}
}

func TestAnalyzeLoginScreen(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Page 1", figma.NodeCanvas,
			node("1:2", "Login Screen", figma.NodeFrame,
				node("1:3", "Email Input", figma.NodeText),
			),
		),
	}

	tasks := Analyze(pages)

	wantFrontend := []string{
		"Implement Login Screen page/screen",
		"Create form validation for Email Input",
	}
	if !reflect.DeepEqual(tasks.Frontend, wantFrontend) {
		t.Fatalf("frontend = %v, want %v", tasks.Frontend, wantFrontend)
	}

	wantBackend := []string{
		"Implement user authentication system",
		"Set up session management",
	}
	if !reflect.DeepEqual(tasks.Backend, wantBackend) {
		t.Fatalf("backend = %v, want %v", tasks.Backend, wantBackend)
	}

	if len(tasks.AI) != 0 {
		t.Fatalf("ai = %v, want empty", tasks.AI)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	tasks := Analyze(nil)
	if tasks.Frontend == nil || tasks.Backend == nil || tasks.AI == nil {
		t.Fatal("categories must be non-nil empty slices")
	}
	if len(tasks.Frontend)+len(tasks.Backend)+len(tasks.AI) != 0 {
		t.Fatalf("want all categories empty, got %+v", tasks)
	}
}

// A two-rune name must pass the unguarded generate/ai/smart/auto group but
// stay below every length-guarded group.
func TestAIShortNameGuards(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "ai", figma.NodeFrame),
	}

	tasks := Analyze(pages)

	want := []string{
		"Integrate AI content generation API",
		"Implement content moderation system",
	}
	if !reflect.DeepEqual(tasks.AI, want) {
		t.Fatalf("ai = %v, want %v", tasks.AI, want)
	}
}

func TestAILengthGuardBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		nodeName  string
		wantTasks bool
	}{
		{"find at four runes is below the search guard", "find", false},
		{"finder at six runes passes the search guard", "finder", true},
		{"find at five runes passes", "find5", true},
		{"search at six runes passes", "search", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := Analyze([]*figma.Node{node("1:1", tc.nodeName, figma.NodeFrame)})
			has := false
			for _, task := range tasks.AI {
				if task == "Implement search algorithm and indexing" {
					has = true
				}
			}
			if has != tc.wantTasks {
				t.Fatalf("name %q: search task present = %v, want %v", tc.nodeName, has, tc.wantTasks)
			}
		})
	}
}

func TestCollectDeterminism(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Dashboard Page", figma.NodeCanvas,
			node("1:2", "Profile Card", figma.NodeComponent),
			node("1:3", "Search Bar", figma.NodeFrame,
				node("1:4", "Submit Button", figma.NodeRectangle),
			),
		),
	}

	first := collect(pages)
	second := collect(pages)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ:\n%v\n%v", first, second)
	}
}

// Adding a node that only matches AI keywords must leave the frontend and
// backend sequences untouched.
func TestCategoryIndependence(t *testing.T) {
	base := func(extra ...*figma.Node) []*figma.Node {
		children := append([]*figma.Node{
			node("1:2", "News Feed", figma.NodeFrame),
			node("1:3", "Login Form", figma.NodeComponent),
		}, extra...)
		return []*figma.Node{node("1:1", "Page 1", figma.NodeCanvas, children...)}
	}

	with := collect(base(node("1:4", "Smart Suggestions", figma.NodeRectangle)))
	without := collect(base())

	if !reflect.DeepEqual(with[0], without[0]) {
		t.Fatalf("frontend changed: %v vs %v", with[0], without[0])
	}
	if !reflect.DeepEqual(with[1], without[1]) {
		t.Fatalf("backend changed: %v vs %v", with[1], without[1])
	}
	if reflect.DeepEqual(with[2], without[2]) {
		t.Fatal("ai output should differ between the two trees")
	}
}

// A child's subtree tasks come before the interactive-child task recorded
// for that child, and siblings stay in document order.
func TestFrontendTraversalOrder(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Home Page", figma.NodeFrame,
			node("1:2", "Card", figma.NodeComponent),
			node("1:3", "Buy Button", figma.NodeRectangle,
				node("1:4", "Icon", figma.NodeComponent),
			),
		),
	}

	raw := collect(pages)
	want := []string{
		"Implement Home Page page/screen",
		"Create Card component",
		"Create Icon component",
		"Implement Buy Button functionality",
	}
	if !reflect.DeepEqual(raw[0], want) {
		t.Fatalf("frontend order = %v, want %v", raw[0], want)
	}
}

func TestAnalyzeDeduplicates(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Page 1", figma.NodeCanvas,
			node("1:2", "Card", figma.NodeComponent),
			node("1:3", "Card", figma.NodeComponent),
		),
	}

	tasks := Analyze(pages)
	want := []string{"Create Card component"}
	if !reflect.DeepEqual(tasks.Frontend, want) {
		t.Fatalf("frontend = %v, want %v", tasks.Frontend, want)
	}
}

func TestUnnamedComponentFallback(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Page 1", figma.NodeCanvas,
			node("1:2", "", figma.NodeComponent),
		),
	}

	tasks := Analyze(pages)
	want := []string{"Create Unknown Component component"}
	if !reflect.DeepEqual(tasks.Frontend, want) {
		t.Fatalf("frontend = %v, want %v", tasks.Frontend, want)
	}
}

func TestBackendMultipleGroups(t *testing.T) {
	pages := []*figma.Node{
		node("1:1", "Chat Dashboard", figma.NodeFrame),
	}

	tasks := Analyze(pages)
	want := []string{
		"Create API endpoint for Chat Dashboard",
		"Implement database schema for Chat Dashboard",
		"Set up WebSocket connections",
		"Implement real-time data synchronization",
	}
	if !reflect.DeepEqual(tasks.Backend, want) {
		t.Fatalf("backend = %v, want %v", tasks.Backend, want)
	}
}
