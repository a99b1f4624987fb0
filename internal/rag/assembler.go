package rag

import (
	"fmt"
	"regexp"
	"strings"

	"docrag/internal/document"
)

// NoContextSentinel is the context string used when retrieval produced
// nothing. The system prompt instructs the model to answer from general
// knowledge when it sees this value.
const NoContextSentinel = "No relevant context found."

// emptyContentPlaceholder replaces a retrieved chunk whose text is blank.
const emptyContentPlaceholder = "[Content missing or empty]"

var linkPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// removeLinks strips URLs from chunk text before it reaches the prompt.
func removeLinks(text string) string {
	return linkPattern.ReplaceAllString(text, "")
}

// FormatContext renders retrieved chunks into the context block of the
// prompt. Each chunk becomes a labeled section carrying its source document
// and page; sections are separated by a --- line. An empty result set yields
// NoContextSentinel.
func FormatContext(results []document.Scored) string {
	if len(results) == 0 {
		return NoContextSentinel
	}

	pieces := make([]string, 0, len(results))
	for _, result := range results {
		chunk := result.Chunk

		source := chunk.Source
		if source == "" {
			source = "Unknown source"
		}

		switch chunk.Type {
		case document.DocTypeImage:
			pieces = append(pieces, fmt.Sprintf("[Context from image: %s]", source))
		case document.DocTypeText:
			pageInfo := ""
			if chunk.Page != nil {
				pageInfo = fmt.Sprintf(", page %d", *chunk.Page)
			}
			pieces = append(pieces, fmt.Sprintf("[Context from text document: %s%s]\n%s", source, pageInfo, chunkBody(chunk.Text)))
		default:
			pieces = append(pieces, fmt.Sprintf("[Context from: %s]\n%s", source, chunkBody(chunk.Text)))
		}
	}

	full := strings.TrimSpace(strings.Join(pieces, "\n---\n"))
	if full == "" {
		return NoContextSentinel
	}
	return full
}

func chunkBody(text string) string {
	if strings.TrimSpace(text) == "" {
		return emptyContentPlaceholder
	}
	return removeLinks(text)
}

// Citations converts retrieval results into the citation list sent alongside
// the answer.
func Citations(results []document.Scored) []document.Citation {
	citations := make([]document.Citation, 0, len(results))
	for _, result := range results {
		citations = append(citations, document.Cite(result))
	}
	return citations
}
