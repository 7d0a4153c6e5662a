package travel

import "time"

// TimeAnnotator resolves the current wall-clock time for a known
// destination.
type TimeAnnotator interface {
	// CurrentTime returns the formatted local time for the destination,
	// or the empty string when the destination has no timezone mapping
	// or the computation fails. Failures are never surfaced further;
	// callers omit the annotation entirely.
	CurrentTime(placeName string) string
}

// Clock supplies the current instant. It exists so annotator output can
// be pinned in tests.
type Clock interface {
	Now() time.Time
}
