package campaigns

import (
	"strings"

	"golang.org/x/net/html"
)

// FlattenHTML strips markup from an HTML fragment and returns its
// visible text with whitespace collapsed. Script, style and noscript
// contents are dropped entirely. Plain text passes through unchanged
// apart from whitespace normalization.
func FlattenHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseWhitespace(fragment)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var (
		text strings.Builder
		skip int
	)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// Tokenization ends with an error token at EOF.
			return collapseWhitespace(text.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				text.Write(tokenizer.Text())
				text.WriteByte(' ')
			}
		}
	}
}

func isInvisibleTag(name string) bool {
	switch name {
	case "script", "style", "noscript":
		return true
	}
	return false
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
