package htmlgrep

// Document binds one immutable HTML string so queries can be invoked
// without repeating it. All methods forward to the package-level
// functions; no logic lives here. A Document is safe for concurrent
// use since every operation is a pure function of the bound string.
type Document struct {
	html string
}

// NewDocument returns a Document bound to html.
func NewDocument(html string) *Document {
	return &Document{html: html}
}

// HTML returns the bound document string.
func (d *Document) HTML() string {
	return d.html
}

// GetByClass returns every element with the given class, optionally
// restricted to a tag name.
func (d *Document) GetByClass(className string, tag ...string) []string {
	return GetByClass(d.html, className, tag...)
}

// GetByTag returns every element with the given tag name, optionally
// restricted to a class.
func (d *Document) GetByTag(tag string, className ...string) []string {
	return GetByTag(d.html, tag, className...)
}

// GetElementByID returns the element with the given id as a zero-or-one
// element slice.
func (d *Document) GetElementByID(id string) []string {
	return GetElementByID(d.html, id)
}

// GetByDataAttr returns every element carrying data-{dataAttr}.
func (d *Document) GetByDataAttr(dataAttr string) []string {
	return GetByDataAttr(d.html, dataAttr)
}

// QuerySelectorAll returns every element matching the selector.
func (d *Document) QuerySelectorAll(selector string) []string {
	return QuerySelectorAll(d.html, selector)
}

// QuerySelector returns the first element matching the selector.
func (d *Document) QuerySelector(selector string) (string, bool) {
	return QuerySelector(d.html, selector)
}

// ExtractElement resolves the element span starting at start.
func (d *Document) ExtractElement(start int, tag string) (string, bool) {
	return ExtractElement(d.html, start, tag)
}
