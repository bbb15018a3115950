package cvfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extraction failures, distinguished so handlers can report them separately.
var (
	// ErrUnsupportedFormat: the filename extension is neither .pdf nor .docx.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	// ErrParseFailure: the bytes could not be decoded as the claimed format.
	ErrParseFailure = errors.New("could not read file")
)

// ExtractText extracts plain text from a CV file. The format is chosen by the
// filename extension; the returned text is whitespace-normalized UTF-8 and
// passed to the analysis engine as-is.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer doc.Close()
	xml := doc.Editable().GetContent()
	// paragraph boundaries become newlines, then XML tags are stripped
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var reTags = regexp.MustCompile(`<[^>]+>`)

func normalizeWhitespace(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// preserve newlines but collapse runs
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)
