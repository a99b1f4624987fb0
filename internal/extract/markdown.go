package extract

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"docrag/internal/document"
)

// MarkdownExtractor extracts text from markdown files using goldmark AST
// parsing, one element per top-level block (heading, paragraph, list, code
// block, table).
type MarkdownExtractor struct {
	parser goldmark.Markdown
}

// NewMarkdownExtractor creates a new markdown extractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Extract parses the markdown and returns one element per top-level block.
func (e *MarkdownExtractor) Extract(ctx context.Context, filename string, data []byte) ([]Element, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrNoContent
	}

	reader := text.NewReader(data)
	doc := e.parser.Parser().Parse(reader)

	var elements []Element
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		blockText := e.blockText(node, data)
		if strings.TrimSpace(blockText) == "" {
			continue
		}

		elements = append(elements, Element{
			Text:  blockText,
			Index: len(elements),
			Type:  document.DocTypeText,
		})
	}

	if len(elements) == 0 {
		return nil, ErrNoContent
	}

	return elements, nil
}

// blockText extracts the text content of a block node and its children.
func (e *MarkdownExtractor) blockText(n ast.Node, content []byte) string {
	switch node := n.(type) {
	case *ast.FencedCodeBlock:
		return codeBlockText(node.Lines(), content)
	case *ast.CodeBlock:
		return codeBlockText(node.Lines(), content)
	}

	kindName := n.Kind().String()
	if strings.Contains(kindName, "Table") {
		return tableText(n, content)
	}

	var builder strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			segment := v.Segment
			builder.Write(segment.Value(content))
			if v.HardLineBreak() || v.SoftLineBreak() {
				builder.WriteString("\n")
			}
		case *ast.String:
			builder.Write(v.Value)
		case *ast.ListItem:
			if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
				builder.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}

// codeBlockText collects the raw lines of a code block.
func codeBlockText(lines *text.Segments, content []byte) string {
	var builder strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		builder.Write(line.Value(content))
	}
	return strings.TrimSpace(builder.String())
}

// tableText renders a table node with pipe-separated cells, one row per line.
func tableText(table ast.Node, content []byte) string {
	var builder strings.Builder

	_ = ast.Walk(table, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		kindName := node.Kind().String()
		if strings.Contains(kindName, "TableRow") || strings.Contains(kindName, "TableHeader") {
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(tableRowText(node, content))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}

// tableRowText extracts text from a table row, formatting cells with pipe separators.
func tableRowText(row ast.Node, content []byte) string {
	var rowBuilder strings.Builder
	cellCount := 0

	_ = ast.Walk(row, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		kindName := node.Kind().String()
		if strings.Contains(kindName, "TableCell") {
			cellText := inlineText(node, content)
			if cellCount > 0 {
				rowBuilder.WriteString(" | ")
			}
			rowBuilder.WriteString(cellText)
			cellCount++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return rowBuilder.String()
}

// inlineText extracts trimmed inline text content from a node and its children.
func inlineText(n ast.Node, content []byte) string {
	var builder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			segment := v.Segment
			builder.Write(segment.Value(content))
		case *ast.String:
			builder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}
