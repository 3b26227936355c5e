package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/readsync/models"
)

func TestMapSourceToType(t *testing.T) {
	tests := map[string]models.ArchiveItemType{
		"web":       models.ArchiveItemWeb,
		"selection": models.ArchiveItemWeb,
		"pdf":       models.ArchiveItemPDF,
		"docx":      models.ArchiveItemDOCX,
		"epub":      models.ArchiveItemEPUB,
		"mobi":      models.ArchiveItemMOBI,
		"paste":     models.ArchiveItemPaste,
		"rss":       models.ArchiveItemWeb,
		"":          models.ArchiveItemWeb,
	}

	for source, want := range tests {
		assert.Equal(t, want, MapSourceToType(source), "source %q", source)
	}
}

func TestExtractSourceLabel(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{
			name: "hostname from url",
			doc:  map[string]any{"url": "https://blog.example.org/post/1", "source": "web"},
			want: "blog.example.org",
		},
		{
			name: "file name when url missing",
			doc:  map[string]any{"source": "epub", "cachedDocument": map[string]any{"fileName": "book.epub"}},
			want: "book.epub",
		},
		{
			name: "source when nothing else",
			doc:  map[string]any{"source": "paste"},
			want: "paste",
		},
		{
			name: "raw url text when unparseable and no source",
			doc:  map[string]any{"url": "not a url"},
			want: "not a url",
		},
		{
			name: "empty record",
			doc:  map[string]any{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSourceLabel(tt.doc))
		})
	}
}
