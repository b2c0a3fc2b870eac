// Package mdimport reads appointments from the bullet lists of a Markdown
// document, one "HH:MM description" per list item.
package mdimport

import (
	"strings"

	gm "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

// Rejected is a list item that is not an appointment
type Rejected struct {
	Text string
	Err  error
}

// Parse returns the appointments found in list items, in document order,
// and the items that did not parse. Nested lists are read too; headings
// and paragraphs are ignored.
func Parse(source []byte) ([]appointment.Appointment, []Rejected, error) {
	node := gm.New().Parser().Parse(text.NewReader(source))

	var (
		items    []appointment.Appointment
		rejected []Rejected
	)
	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}

		line := itemText(n, source)
		if line == "" {
			return ast.WalkContinue, nil
		}

		item, err := appointment.Parse(line)
		if err != nil {
			rejected = append(rejected, Rejected{Text: line, Err: err})
			return ast.WalkContinue, nil
		}

		items = append(items, item)
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return items, rejected, nil
}

// itemText is the first text block of a list item, lines joined by spaces
func itemText(item ast.Node, source []byte) string {
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Kind() == ast.KindList {
			continue
		}

		lines := child.Lines()
		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			if part := strings.TrimSpace(string(segment.Value(source))); part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}
