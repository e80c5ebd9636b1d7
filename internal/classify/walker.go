package classify

import "github.com/Hasib303/figma-info-gen/internal/figma"

// Rule is one labeling pass over the tree. Visit fires on node entry in
// pre-order. VisitChild fires for each direct child after that child's
// subtree was visited; it is where rules that inspect a parent's immediate
// children (buttons, form fields) hook in without disturbing the child's
// own subtree ordering.
type Rule struct {
	Visit      func(n *figma.Node) []string
	VisitChild func(parent, child *figma.Node) []string
}

// Run walks every page depth-first once and returns one raw label sequence
// per rule. Each sequence is ordered exactly as a dedicated traversal for
// that rule alone would have produced it, so independent rules cannot
// observe each other. Sequences are not deduplicated.
func Run(pages []*figma.Node, rules []Rule) [][]string {
	out := make([][]string, len(rules))
	for _, page := range pages {
		walk(page, rules, out)
	}
	return out
}

func walk(n *figma.Node, rules []Rule, out [][]string) {
	if n == nil {
		return
	}
	for i, r := range rules {
		if r.Visit != nil {
			out[i] = append(out[i], r.Visit(n)...)
		}
	}
	for _, child := range n.Children {
		walk(child, rules, out)
		for i, r := range rules {
			if r.VisitChild != nil {
				out[i] = append(out[i], r.VisitChild(n, child)...)
			}
		}
	}
}
