package dom

import (
	"bufio"
	"html"
	"io"
	"strings"
)

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

// WriteHTML serializes n and its subtree to w.
func WriteHTML(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n)
	return bw.Flush()
}

// HTML returns the serialized subtree rooted at n.
func (n *Node) HTML() string {
	var sb strings.Builder
	_ = WriteHTML(&sb, n)
	return sb.String()
}

func writeNode(w *bufio.Writer, n *Node) {
	w.WriteByte('<')
	w.WriteString(n.tag)
	if len(n.classes) > 0 {
		writeAttr(w, "class", strings.Join(n.classes, " "))
	}
	if n.style.Size() > 0 {
		writeAttr(w, "style", styleString(n))
	}
	for _, a := range n.attrs {
		writeAttr(w, a.Key, a.Val)
	}
	w.WriteByte('>')
	if voidElements[n.tag] {
		return
	}
	if n.text != "" {
		w.WriteString(html.EscapeString(n.text))
	}
	for _, c := range n.children {
		writeNode(w, c)
	}
	w.WriteString("</")
	w.WriteString(n.tag)
	w.WriteByte('>')
}

func writeAttr(w *bufio.Writer, key, val string) {
	w.WriteByte(' ')
	w.WriteString(key)
	w.WriteString(`="`)
	w.WriteString(html.EscapeString(val))
	w.WriteByte('"')
}

func styleString(n *Node) string {
	props := n.Properties()
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Key + ": " + p.Val
	}
	return strings.Join(parts, "; ")
}
