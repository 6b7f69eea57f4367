package render

import (
	"path"
	"strings"

	"github.com/bethropolis/dir2md/internal/walker"
)

type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

// TreeDiagram renders the classic box-drawing tree for the included entries.
// Entries must be in pre-order with sorted siblings, which is what the
// walker produces; directories get a trailing slash.
func TreeDiagram(rootName string, entries []walker.Entry) string {
	root := &treeNode{name: rootName, isDir: true}
	nodes := map[string]*treeNode{"": root}

	for _, e := range entries {
		parentRel := path.Dir(e.RelPath)
		if parentRel == "." {
			parentRel = ""
		}
		parent, ok := nodes[parentRel]
		if !ok {
			// Cannot happen with walker output: parents precede children.
			continue
		}
		n := &treeNode{name: path.Base(e.RelPath), isDir: e.IsDir}
		parent.children = append(parent.children, n)
		if e.IsDir {
			nodes[e.RelPath] = n
		}
	}

	var b strings.Builder
	b.WriteString(root.name)
	b.WriteString("/\n")
	writeNodes(&b, root.children, "")
	return b.String()
}

func writeNodes(b *strings.Builder, children []*treeNode, prefix string) {
	for i, n := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(n.name)
		if n.isDir {
			b.WriteString("/")
		}
		b.WriteString("\n")
		if len(n.children) > 0 {
			writeNodes(b, n.children, childPrefix)
		}
	}
}
