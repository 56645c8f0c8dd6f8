// Package render serializes decoded DER trees for terminals and for the
// HTTP API.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/derview/derview/internal/der"
)

// Options controls text rendering.
type Options struct {
	// NoColor disables ANSI styling, for pipes and tests.
	NoColor bool
	// Indent is the per-depth prefix. Defaults to two spaces.
	Indent string
}

var (
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	lengthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Text writes an indented one-line-per-node rendering of the tree.
func Text(w io.Writer, nodes []der.Node, opts Options) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return writeNodes(w, nodes, 0, opts)
}

func writeNodes(w io.Writer, nodes []der.Node, depth int, opts Options) error {
	for _, node := range nodes {
		if err := writeNode(w, node, depth, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, node der.Node, depth int, opts Options) error {
	tag := node.Tag.String()
	length := fmt.Sprintf("(%d)", node.Length)
	value := nodeValue(node)
	if !opts.NoColor {
		tag = tagStyle.Render(tag)
		length = lengthStyle.Render(length)
		if value != "" {
			value = valueStyle.Render(value)
		}
	}

	var prefix string
	for i := 0; i < depth; i++ {
		prefix += opts.Indent
	}

	line := prefix + tag + " " + length
	if value != "" {
		line += " " + value
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if node.Kind == der.KindConstructed {
		return writeNodes(w, node.Children, depth+1, opts)
	}
	return nil
}

func nodeValue(node der.Node) string {
	switch node.Kind {
	case der.KindConstructed, der.KindNull:
		return ""
	case der.KindInteger:
		return node.Int.String()
	default:
		return node.Str
	}
}

// JSON renders the tree as indented JSON.
func JSON(nodes []der.Node) ([]byte, error) {
	return json.MarshalIndent(nodes, "", "  ")
}
