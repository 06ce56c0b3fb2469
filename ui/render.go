package ui

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var sanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts snapshot Markdown into sanitized HTML. The
// snapshot body is conversation-derived text, i.e. untrusted input, so
// the rendered HTML is always run through the sanitizer.
func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
