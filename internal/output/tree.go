package output

import (
	"path"
	"slices"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentGap  = "    "
)

// LayoutEntry is one output path of an archetype and the layer that owns it.
type LayoutEntry struct {
	Path  string
	Layer string
}

type layoutNode struct {
	name     string
	layer    string
	dir      bool
	children map[string]*layoutNode
}

func (n *layoutNode) child(name string) *layoutNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &layoutNode{name: name, children: map[string]*layoutNode{}}
	n.children[name] = c
	return c
}

// sorted returns the children with directories first, each group by name.
func (n *layoutNode) sorted() []*layoutNode {
	out := make([]*layoutNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *layoutNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}

type layoutLine struct {
	text  string
	layer string
}

// RenderLayout draws the directory tree an archetype produces under rootName.
// Each file carries its layer tag, aligned one column past the longest path
// line. When two entries name the same path the later layer is shown, since
// that file overwrites the earlier one.
func RenderLayout(p Printer, rootName string, entries []LayoutEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &layoutNode{name: rootName, dir: true, children: map[string]*layoutNode{}}
	for _, e := range entries {
		parts := strings.Split(path.Clean(strings.ReplaceAll(e.Path, "\\", "/")), "/")
		n := root
		for i, part := range parts {
			n = n.child(part)
			if i < len(parts)-1 {
				n.dir = true
			} else {
				n.layer = e.Layer
			}
		}
	}

	var lines []layoutLine
	var walk func(n *layoutNode, prefix string)
	walk = func(n *layoutNode, prefix string) {
		kids := n.sorted()
		for i, c := range kids {
			branch, indent := branchMid, indentPipe
			if i == len(kids)-1 {
				branch, indent = branchEnd, indentGap
			}
			name := c.name
			if c.dir {
				name += "/"
			}
			lines = append(lines, layoutLine{text: prefix + branch + name, layer: c.layer})
			if c.dir {
				walk(c, prefix+indent)
			}
		}
	}
	walk(root, "")

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}

	var b strings.Builder
	b.WriteString(p.Heading(rootName + "/"))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(l.text)
		if l.layer != "" {
			b.WriteString(strings.Repeat(" ", width-len([]rune(l.text))+2))
			b.WriteString(p.LayerTag(l.layer))
		}
		b.WriteString("\n")
	}
	return b.String()
}
