package toc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

var htmlRenderer = goldmark.New()

// RenderHTML converts entries into a nested HTML list. Nesting follows Tree,
// so skipped heading levels collapse to one list level each.
func RenderHTML(entries []Entry) (string, error) {
	nodes := Tree(entries)
	if len(nodes) == 0 {
		return "", nil
	}

	var md strings.Builder
	writeNodes(&md, nodes, 0)

	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

// writeNodes writes nodes as a Markdown list indented by depth, never by
// heading level; 4+ spaces under a list item would start a code block.
func writeNodes(sb *strings.Builder, nodes []*Node, depth int) {
	for _, node := range nodes {
		sb.WriteString(strings.Repeat(Indent, depth))
		sb.WriteString("- [")
		sb.WriteString(node.Title)
		sb.WriteString("](")
		sb.WriteString(node.Anchor)
		sb.WriteString(")\n")
		if len(node.Children) > 0 {
			writeNodes(sb, node.Children, depth+1)
		}
	}
}
