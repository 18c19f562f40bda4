// Package quizdoc converts exported quiz-result pages from a learning
// management system into study material: plain text, Markdown, JSON, YAML
// and a flashcard-import format.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package quizdoc
