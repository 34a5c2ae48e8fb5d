package htmlgrep

import "regexp"

// openAnyRe returns a pattern matching an opening tag for any tag name
// (or the given one), capturing the tag name so the match can be
// resolved to a full element span.
func openAnyRe(tagPattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<(` + tagPattern + `)(\s[^>]*)?>`)
}

// GetByClass returns every element whose class attribute contains
// className as a word-bounded token, in document order. An optional tag
// name restricts the scan to that tag; by default any tag matches.
//
// Tag and attribute names match case-insensitively; className matches
// the class value case-sensitively. Candidates whose element span
// cannot be resolved (unterminated elements) are skipped silently so
// one malformed fragment never aborts the scan.
func GetByClass(html, className string, tag ...string) []string {
	if className == "" {
		return nil
	}

	tagPattern := anyTagPattern
	if len(tag) > 0 && tag[0] != "" {
		if !tagNameRe.MatchString(tag[0]) {
			return nil
		}
		tagPattern = regexp.QuoteMeta(tag[0])
	}

	// Word boundaries avoid partial-token overlap (searching "item"
	// won't match class="items"); explicit token splitting is not done.
	tokenRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(className) + `\b`)
	openRe := openAnyRe(tagPattern)

	var elements []string
	for _, m := range openRe.FindAllStringSubmatchIndex(html, -1) {
		openTag := html[m[0]:m[1]]
		value, ok := GetAttr(openTag, "class")
		if !ok || !tokenRe.MatchString(value) {
			continue
		}
		el, ok := ExtractElement(html, m[0], html[m[2]:m[3]])
		if !ok {
			continue
		}
		elements = append(elements, el)
	}
	return elements
}

// GetByTag returns every element with the given tag name, in document
// order, skipping unresolvable occurrences. An optional class name
// restricts matches to elements carrying it, in which case the scan
// delegates to GetByClass.
func GetByTag(html, tag string, className ...string) []string {
	if len(className) > 0 && className[0] != "" {
		return GetByClass(html, className[0], tag)
	}
	if !tagNameRe.MatchString(tag) {
		return nil
	}

	openRe := openTagRe(tag)

	var elements []string
	for _, m := range openRe.FindAllStringIndex(html, -1) {
		el, ok := ExtractElement(html, m[0], tag)
		if !ok {
			continue
		}
		elements = append(elements, el)
	}
	return elements
}

// GetElementByID returns the element whose id attribute equals id, as a
// zero-or-one element slice. Only the first opening tag with a matching
// id is considered: ids are assumed unique, so later duplicates are
// never searched, and if the first match is unterminated the result is
// empty. The id comparison is case-sensitive.
func GetElementByID(html, id string) []string {
	if id == "" {
		return nil
	}

	openRe := openAnyRe(anyTagPattern)

	for _, m := range openRe.FindAllStringSubmatchIndex(html, -1) {
		openTag := html[m[0]:m[1]]
		value, ok := GetAttr(openTag, "id")
		if !ok || value != id {
			continue
		}
		el, ok := ExtractElement(html, m[0], html[m[2]:m[3]])
		if !ok {
			return nil
		}
		return []string{el}
	}
	return nil
}

// GetByDataAttr returns every element carrying a data-{dataAttr}
// attribute (the value may be empty), in document order, skipping
// unresolvable occurrences.
func GetByDataAttr(html, dataAttr string) []string {
	if dataAttr == "" {
		return nil
	}

	openRe := openAnyRe(anyTagPattern)
	name := "data-" + dataAttr

	var elements []string
	for _, m := range openRe.FindAllStringSubmatchIndex(html, -1) {
		openTag := html[m[0]:m[1]]
		if _, ok := GetAttr(openTag, name); !ok {
			continue
		}
		el, ok := ExtractElement(html, m[0], html[m[2]:m[3]])
		if !ok {
			continue
		}
		elements = append(elements, el)
	}
	return elements
}
