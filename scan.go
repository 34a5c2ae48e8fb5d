package htmlgrep

import "regexp"

// anyTagPattern matches any valid tag name.
const anyTagPattern = `[A-Za-z][A-Za-z0-9]*`

// tagNameRe validates tag names before they are spliced into patterns.
var tagNameRe = regexp.MustCompile(`^` + anyTagPattern + `$`)

// openTagRe returns a pattern matching an opening tag for the given tag
// name, case-insensitively, with arbitrary attributes. Attribute values
// containing a literal ">" break the match; this is a known limitation
// of scanning without a tokenizer.
func openTagRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(tag) + `(\s[^>]*)?>`)
}

// closeTagRe returns a pattern matching a closing tag for the given tag
// name, case-insensitively.
func closeTagRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(tag) + `\s*>`)
}

// findFrom returns the start and end offsets of the first match of re in
// html at or after from, or (-1, -1) when no match remains.
func findFrom(re *regexp.Regexp, html string, from int) (start, end int) {
	if from < 0 || from > len(html) {
		return -1, -1
	}
	loc := re.FindStringIndex(html[from:])
	if loc == nil {
		return -1, -1
	}
	return from + loc[0], from + loc[1]
}

// ExtractElement returns the full span of the element whose opening tag
// begins exactly at start: everything from the first character of the
// opening tag through the last character of the matching closing tag.
// Nested same-named elements are balanced by depth tracking, so the
// span ends at the close tag that returns the depth to zero, not at the
// first close tag encountered.
//
// Returns ("", false) when no opening tag for tag begins at start, or
// when the element is unterminated (no balancing close tag before the
// end of the document). A partial span is never returned. Void and
// self-closing elements are not recognized; a tag name that never
// recurs as a closing tag fails resolution.
func ExtractElement(html string, start int, tag string) (string, bool) {
	if start < 0 || start >= len(html) || !tagNameRe.MatchString(tag) {
		return "", false
	}

	openRe := openTagRe(tag)
	closeRe := closeTagRe(tag)

	// The opening tag must begin exactly at start.
	loc := openRe.FindStringIndex(html[start:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}

	depth := 1
	cursor := start + loc[1]

	for depth > 0 {
		openStart, openEnd := findFrom(openRe, html, cursor)
		closeStart, closeEnd := findFrom(closeRe, html, cursor)

		if closeStart == -1 {
			// Unterminated element.
			return "", false
		}

		if openStart != -1 && openStart < closeStart {
			// Entering a same-named nested element.
			cursor = openEnd
			depth++
			continue
		}

		cursor = closeEnd
		depth--
	}

	return html[start:cursor], true
}
