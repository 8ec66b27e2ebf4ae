// Package docindex collects searchable text from a tree of Markdown
// documents, hands the corpus to the external docfind indexer, and serves
// the resulting index during development.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., yaml/, fsnotify/, flock/).
package docindex
