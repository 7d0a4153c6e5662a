package mock

import (
	"context"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

var _ travel.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader is a mock implementation of travel.DatasetLoader.
type DatasetLoader struct {
	LoadFn func(ctx context.Context) (*travel.Dataset, error)
}

func (l *DatasetLoader) Load(ctx context.Context) (*travel.Dataset, error) {
	return l.LoadFn(ctx)
}
