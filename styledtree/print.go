package styledtree

import (
	"fmt"
	"io"

	"github.com/npillmayer/tinystyle/tree"
	tp "github.com/xlab/treeprint"
)

// Print writes an indented rendering of a styled tree to w, one line per
// node, showing each node's label and its non-empty property map.
//
//	#document
//	└── html
//	    ├── head
//	    └── body
//	        └── p#answer { display: none }
func Print(w io.Writer, root *tree.Node[*StyNode]) error {
	_, err := io.WriteString(w, Sprint(root))
	return err
}

// Sprint renders a styled tree as a string. See Print.
func Sprint(root *tree.Node[*StyNode]) string {
	if root == nil {
		return "<empty>\n"
	}
	p := tp.NewWithRoot(label(Node(root)))
	for _, ch := range root.Children() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, n *tree.Node[*StyNode]) {
	if n.ChildCount() == 0 {
		p.AddNode(label(Node(n)))
		return
	}
	branch := p.AddBranch(label(Node(n)))
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}

func label(sn *StyNode) string {
	if sn.Styles().Size() == 0 {
		return sn.String()
	}
	return fmt.Sprintf("%s %s", sn, sn.Styles())
}
