package mock

import (
	travel "github.com/Vnwedo/Travel-Recommendation"
)

var _ travel.TimeAnnotator = (*TimeAnnotator)(nil)

// TimeAnnotator is a mock implementation of travel.TimeAnnotator.
type TimeAnnotator struct {
	CurrentTimeFn func(placeName string) string
}

func (a *TimeAnnotator) CurrentTime(placeName string) string {
	return a.CurrentTimeFn(placeName)
}
