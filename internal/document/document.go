package document

// DocType classifies the origin of a chunk's content.
type DocType string

const (
	DocTypeText  DocType = "text"
	DocTypeImage DocType = "image"
	DocTypeOther DocType = "other"
)

// Chunk is a unit of retrievable content produced by the ingestion pipeline.
// Chunks are immutable once written to the vector index: a changed file gets a
// new content hash and therefore new chunks.
type Chunk struct {
	// Text is the chunk content. Blank chunks are dropped before indexing.
	Text string
	// Source is the originating filename.
	Source string
	// Page is the 1-based page number, when the source has a page concept.
	Page *int
	// ElementIndex is the position within the source when no page concept
	// applies (e.g. markdown blocks).
	ElementIndex *int
	// Type classifies the originating element.
	Type DocType
	// ContentHash is the SHA-256 hex digest of the source file bytes. All
	// chunks of one file share the same hash.
	ContentHash string
}

// Scored pairs a retrieved chunk with its relevance score.
// Scores are cosine similarity as reported by the vector backend:
// higher is better, and results are ordered descending.
type Scored struct {
	Chunk Chunk
	Score float32
}

// Citation is the reduced form of a chunk emitted on the sources side channel.
// It never carries the full chunk text, only a short preview.
type Citation struct {
	Source  string `json:"source"`
	Page    *int   `json:"page,omitempty"`
	Preview string `json:"preview"`
}

// previewLimit bounds citation previews in runes.
const previewLimit = 160

// Cite reduces a scored chunk to a citation.
func Cite(s Scored) Citation {
	preview := s.Chunk.Text
	runes := []rune(preview)
	if len(runes) > previewLimit {
		preview = string(runes[:previewLimit]) + "..."
	}
	return Citation{
		Source:  s.Chunk.Source,
		Page:    s.Chunk.Page,
		Preview: preview,
	}
}
