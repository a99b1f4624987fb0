package extract

import (
	"context"
	"errors"
	"testing"

	"docrag/internal/document"
)

func TestRegistry_DispatchByExtension(t *testing.T) {
	registry := NewRegistry()
	ctx := context.Background()

	cases := []struct {
		name     string
		filename string
		data     []byte
		wantType document.DocType
	}{
		{"plain text", "notes.txt", []byte("some text"), document.DocTypeText},
		{"text extension", "notes.text", []byte("some text"), document.DocTypeText},
		{"markdown", "readme.md", []byte("# Title\n\nBody."), document.DocTypeText},
		{"markdown long ext", "readme.markdown", []byte("# Title\n\nBody."), document.DocTypeText},
		{"image", "photo.png", []byte{0x89, 0x50, 0x4e, 0x47}, document.DocTypeImage},
		{"uppercase extension", "NOTES.TXT", []byte("some text"), document.DocTypeText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			elements, err := registry.Extract(ctx, tc.filename, tc.data)
			if err != nil {
				t.Fatalf("extract failed: %v", err)
			}
			if len(elements) == 0 {
				t.Fatal("expected at least one element")
			}
			if elements[0].Type != tc.wantType {
				t.Errorf("expected type %q, got %q", tc.wantType, elements[0].Type)
			}
		})
	}
}

func TestRegistry_UnsupportedExtension(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Extract(context.Background(), "binary.exe", []byte{0x4d, 0x5a})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestRegistry_NoExtension(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Extract(context.Background(), "README", []byte("text"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
