// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Agency feed descriptions arrive as HTML fragments; listings need plain text

package html

import (
	"strings"
)

// StripHTML removes HTML tags and decodes common entities from a string.
// Feed descriptions are short fragments, so a linear tag scan is enough;
// anything that needs real parsing goes through goquery instead.
func StripHTML(html string) string {
	text := html

	var b strings.Builder
	b.Grow(len(text))
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	text = b.String()

	text = DecodeEntities(text)
	text = strings.TrimSpace(text)

	// Collapse runs of whitespace left behind by removed tags
	return strings.Join(strings.Fields(text), " ")
}

// DecodeEntities decodes the HTML entities that show up in procurement
// feed titles and descriptions
func DecodeEntities(text string) string {
	replacements := []struct {
		entity, plain string
	}{
		{"&nbsp;", " "},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", "\""},
		{"&#39;", "'"},
		{"&apos;", "'"},
		{"&#8217;", "'"},
		{"&#8220;", "\""},
		{"&#8221;", "\""},
		{"&ldquo;", "\""},
		{"&rdquo;", "\""},
		{"&lsquo;", "'"},
		{"&rsquo;", "'"},
		{"&mdash;", "-"},
		{"&ndash;", "-"},
		{"&#8230;", "..."},
		{"&hellip;", "..."},
		{"&amp;", "&"}, // last so &amp;lt; does not double-decode
	}

	result := text
	for _, r := range replacements {
		result = strings.ReplaceAll(result, r.entity, r.plain)
	}
	return result
}
