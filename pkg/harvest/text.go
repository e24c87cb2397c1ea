package harvest

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// maxBodySize bounds the article size read by ExtractText.
const maxBodySize = 10 * 1024 * 1024

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses (<rp>...</rp>)
// from HTML content. Readability keeps the furigana otherwise, so "漢字"
// becomes "漢字かんじ" and no headword matches.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// Article is the readable text of a source file.
type Article struct {
	Title string
	Text  string
}

// ExtractText reads an article. Files named *.html or *.htm are reduced to
// their main content with readability; anything else is plain text.
func ExtractText(r io.Reader, name string) (Article, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize+1))
	if err != nil {
		return Article{}, fmt.Errorf("read %s: %w", name, err)
	}
	if len(body) > maxBodySize {
		return Article{}, fmt.Errorf("%s exceeds the maximum size of %d bytes", name, maxBodySize)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
	default:
		return Article{Text: string(body)}, nil
	}

	body = SanitizeRuby(body)
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(name)}
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("extract %s: %w", name, err)
	}
	return Article{Title: article.Title, Text: article.TextContent}, nil
}

// SplitSentences splits text after sentence punctuation and at line breaks.
// Sentences are trimmed and empty ones dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, strings.Join(strings.Fields(s), " "))
		}
		current.Reset()
	}
	for _, r := range text {
		if r == '\n' || r == '\r' {
			flush()
			continue
		}
		current.WriteRune(r)
		switch r {
		case '。', '！', '？', '.', '!', '?':
			flush()
		}
	}
	flush()
	return sentences
}
