package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "openai.key")
	if err := os.WriteFile(keyFile, []byte("  sk-from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	emptyFile := filepath.Join(dir, "empty.key")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	tests := []struct {
		name          string
		src           Source
		want          string
		notConfigured bool
		errContains   string
	}{
		{
			name: "inline value is trimmed",
			src:  Source{Name: "openai api key", Value: "  sk-inline "},
			want: "sk-inline",
		},
		{
			name: "file wins over value",
			src:  Source{Name: "openai api key", Value: "sk-inline", File: keyFile},
			want: "sk-from-file",
		},
		{
			name:          "nothing configured",
			src:           Source{Name: "openai api key"},
			notConfigured: true,
		},
		{
			name:        "empty file",
			src:         Source{Name: "gemini api key", File: emptyFile},
			errContains: "is empty",
		},
		{
			name:        "missing file",
			src:         Source{File: filepath.Join(dir, "missing.key")},
			errContains: "reading secret from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)

			switch {
			case tt.notConfigured:
				if !errors.Is(err, ErrNotConfigured) {
					t.Fatalf("expected ErrNotConfigured, got %v", err)
				}
			case tt.errContains != "":
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				if errors.Is(err, ErrNotConfigured) {
					t.Fatalf("file errors must not look like a missing secret: %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Fatalf("expected %q, got %q", tt.want, got)
				}
			}
		})
	}
}
