package services

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Formatter renders article content for single-article responses.
type Formatter interface {
	Format(content string) (string, error)
}

// PlainFormatter returns content unchanged.
type PlainFormatter struct{}

func (PlainFormatter) Format(content string) (string, error) {
	return content, nil
}

// MarkdownFormatter renders markdown content to HTML.
type MarkdownFormatter struct {
	md goldmark.Markdown
}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (f *MarkdownFormatter) Format(content string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
