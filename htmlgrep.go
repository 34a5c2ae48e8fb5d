// Package htmlgrep extracts element, attribute, and text substrings from
// raw HTML using pattern matching instead of full tree construction. It
// is aimed at scraping workloads where throughput matters more than
// standards-complete HTML handling: elements are located by scanning for
// tag occurrences and balancing same-named open/close tags, and a small
// CSS-subset selector (tag, .class, #id, tag.class, tag#id) dispatches
// onto those scans.
//
// This package contains the pure scanning core plus domain types and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations of the collaborator interfaces live in subdirectories
// named after their primary dependency (e.g., sqlite/, goquery/, rod/).
package htmlgrep
