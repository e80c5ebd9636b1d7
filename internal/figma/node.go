package figma

// NodeType is the Figma node type tag. Tags not listed here pass through
// verbatim; a node missing its type decodes to the empty tag and matches
// no type-specific classification rule.
type NodeType string

const (
	NodeDocument  NodeType = "DOCUMENT"
	NodeCanvas    NodeType = "CANVAS"
	NodeFrame     NodeType = "FRAME"
	NodeComponent NodeType = "COMPONENT"
	NodeRectangle NodeType = "RECTANGLE"
	NodeText      NodeType = "TEXT"
)

// Node is one element of the document tree. Optional fields in the REST
// payload (name, children) decode to their zero values.
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Children []*Node  `json:"children,omitempty"`
}

// File is the decoded /files/<key> response. Document.Children are the
// top-level pages.
type File struct {
	Name     string `json:"name"`
	Document *Node  `json:"document"`
}

// Pages returns the top-level page nodes, or nil for an empty document.
func (f *File) Pages() []*Node {
	if f == nil || f.Document == nil {
		return nil
	}
	return f.Document.Children
}
