package mock

import (
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

var _ travel.Clock = (*Clock)(nil)

// Clock is a mock implementation of travel.Clock.
type Clock struct {
	NowFn func() time.Time
}

func (c *Clock) Now() time.Time {
	return c.NowFn()
}
