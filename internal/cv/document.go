package cv

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedDocument is returned for files that are neither plain text, PDF nor DOCX.
var ErrUnsupportedDocument = errors.New("unsupported document type")

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:br [^>]*/>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
	xmlEntities      = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// ReadDocument returns the plain text of a CV file. The format is chosen by the
// file extension and, when that is missing, by the content signature.
func ReadDocument(name string, data []byte) (string, error) {
	switch documentKind(name, data) {
	case "text":
		return string(data), nil
	case "pdf":
		return pdfText(data)
	case "docx":
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDocument, name)
	}
}

func documentKind(name string, data []byte) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return "text"
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case "":
		switch {
		case bytes.HasPrefix(data, []byte("%PDF-")):
			return "pdf"
		case bytes.HasPrefix(data, []byte("PK\x03\x04")):
			return "docx"
		default:
			return "text"
		}
	default:
		return ""
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText flattens document.xml into text with one line per paragraph.
func docxPlainText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	content = xmlEntities.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
