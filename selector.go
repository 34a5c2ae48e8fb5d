package htmlgrep

import "regexp"

// Selector is the restricted single-step query this package supports:
// an optional tag name, optional id, and optional class, with no
// combinators. The zero value matches nothing.
type Selector struct {
	Tag   string
	ID    string
	Class string
}

// selectorRe is the full selector grammar, in this token order only.
// Descendant and combinator forms fall outside the pattern and are
// rejected wholesale.
var selectorRe = regexp.MustCompile(`^(` + anyTagPattern + `)?(#[A-Za-z0-9_-]+)?(\.[A-Za-z0-9_-]+)?$`)

// ParseSelector parses a selector string. Returns false for strings
// outside the supported grammar and for the empty selector.
func ParseSelector(s string) (Selector, bool) {
	m := selectorRe.FindStringSubmatch(s)
	if m == nil {
		return Selector{}, false
	}

	sel := Selector{Tag: m[1]}
	if m[2] != "" {
		sel.ID = m[2][1:]
	}
	if m[3] != "" {
		sel.Class = m[3][1:]
	}
	if sel.Tag == "" && sel.ID == "" && sel.Class == "" {
		return Selector{}, false
	}
	return sel, true
}

// QuerySelectorAll returns every element matching the selector, in
// document order. When multiple selector pieces are present the id
// takes precedence, then tag-and-class, then class, then tag.
// Unsupported selector strings yield an empty result, not an error.
func QuerySelectorAll(html, selector string) []string {
	sel, ok := ParseSelector(selector)
	if !ok {
		return nil
	}

	switch {
	case sel.ID != "":
		return GetElementByID(html, sel.ID)
	case sel.Tag != "" && sel.Class != "":
		return GetByClass(html, sel.Class, sel.Tag)
	case sel.Class != "":
		return GetByClass(html, sel.Class)
	default:
		return GetByTag(html, sel.Tag)
	}
}

// QuerySelector returns the first element matching the selector, or
// ("", false) when nothing matches.
func QuerySelector(html, selector string) (string, bool) {
	elements := QuerySelectorAll(html, selector)
	if len(elements) == 0 {
		return "", false
	}
	return elements[0], true
}
