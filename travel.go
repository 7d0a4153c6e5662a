// Package travel provides a client for searching a static catalog of
// travel recommendations: countries with their cities, beaches, and
// temples. It loads the catalog once from a remote or local JSON
// document, classifies free-text queries into categories, filters the
// catalog, and prepares render-ready result cards, annotating city
// results with their current local time.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// fs/, timezone/, lipgloss/).
package travel
