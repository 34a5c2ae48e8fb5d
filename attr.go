package htmlgrep

import (
	"regexp"
	"strings"
)

// anyTagDelimRe matches any tag delimiter, including closing tags.
var anyTagDelimRe = regexp.MustCompile(`<[^>]*>`)

// innerHTMLRe captures everything between the outermost opening tag and
// the outermost closing tag of an element span.
var innerHTMLRe = regexp.MustCompile(`(?s)\A<[^>]*>(.*)</[^>]*>\z`)

// GetAttr returns the value of the named attribute in element, matching
// the attribute name case-insensitively and the value as literal text.
// Only double-quoted name="value" attributes are recognized.
//
// The search covers the whole element span, not just the opening tag.
// In practice the opening tag's attribute wins because it appears first,
// but a name="value" occurrence inside nested child markup can satisfy
// the search if no earlier match exists.
func GetAttr(element, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\s*=\s*"([^"]*)"`)
	m := re.FindStringSubmatch(element)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GetAttrs maps GetAttr over elements, preserving order. The result has
// one entry per input; nil marks an element without the attribute.
func GetAttrs(elements []string, name string) []*string {
	values := make([]*string, len(elements))
	for i, el := range elements {
		if v, ok := GetAttr(el, name); ok {
			values[i] = &v
		}
	}
	return values
}

// GetText strips every tag delimiter from element, including nested
// child tags, and trims surrounding whitespace. Character references
// such as &amp; pass through undecoded.
func GetText(element string) string {
	return strings.TrimSpace(anyTagDelimRe.ReplaceAllString(element, ""))
}

// InnerHTML strips exactly the outermost opening and closing tags from
// element and returns everything between them. Spans that do not fit
// the open-content-close shape (self-closing or malformed) are returned
// unchanged.
func InnerHTML(element string) string {
	m := innerHTMLRe.FindStringSubmatch(element)
	if m == nil {
		return element
	}
	return m[1]
}
