package kdtree

import (
	"bufio"
	"io"
	"strings"
)

func dump(w *bufio.Writer, n *Node, d int, hi bool) {
	if n == nil {
		return
	}
	dump(w, n.lo, d+1, false)
	for i := 1; i < d; i++ {
		w.WriteString("\t\t\t")
	}
	if d != 0 {
		if hi {
			w.WriteString("\\---")
		} else {
			w.WriteString("/---")
		}
	}
	w.WriteString(n.val.String())
	w.WriteByte('\n')
	dump(w, n.hi, d+1, true)
}

// Dump writes the tree sideways, one point per line in traversal order.
// Lines are indented by depth; lo children hang off "/---" above their parent
// and hi children off "\---" below it. An empty set writes nothing
func (s *PointSet) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	dump(bw, s.root, 0, false)
	return bw.Flush()
}

func (s *PointSet) String() string {
	var sb strings.Builder
	s.Dump(&sb)
	return sb.String()
}
