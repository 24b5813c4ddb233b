package compose

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders n as an indented tree for debugging and golden tests.
func Dump(n *Node) string {
	p := tp.New()
	dumpNode(p, n)
	return p.String()
}

func dumpNode(p tp.Tree, n *Node) {
	if n == nil {
		p.AddNode("<nil>")
		return
	}
	branch := p.AddBranch(label(n))
	for _, c := range n.Layout() {
		switch c.kind {
		case ContentText:
			branch.AddNode(strconv.Quote(c.text))
		case ContentComponent:
			dumpNode(branch, c.node)
		}
	}
}

func label(n *Node) string {
	var b strings.Builder
	b.WriteString(n.kind.Name)

	names := make([]string, 0, len(n.props))
	for k := range n.props {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&b, " %s=%v", k, n.props[k])
	}

	if n.kind.Styled {
		d := n.resolved
		fmt.Fprintf(&b, " [%s %s", d.Variant, d.Size)
		if d.Background != "" {
			fmt.Fprintf(&b, " bg=%s", d.Background)
		}
		b.WriteString("]")
	}
	for _, s := range n.SlotNames() {
		fmt.Fprintf(&b, " #%s", s)
	}
	return b.String()
}
