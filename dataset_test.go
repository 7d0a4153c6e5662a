package travel_test

import (
	"testing"

	travel "github.com/Vnwedo/Travel-Recommendation"
	"github.com/stretchr/testify/assert"
)

func TestDataset_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts dataset with destinations", func(t *testing.T) {
		t.Parallel()

		ds := &travel.Dataset{
			Beaches: []travel.Place{{Name: "Bora Bora, French Polynesia"}},
		}

		assert.NoError(t, ds.Validate())
	})

	t.Run("rejects empty dataset", func(t *testing.T) {
		t.Parallel()

		ds := &travel.Dataset{}

		err := ds.Validate()
		assert.Equal(t, travel.EINVALID, travel.ErrorCode(err))
	})
}

func TestDataset_Fingerprint(t *testing.T) {
	t.Parallel()

	t.Run("is stable for equal contents", func(t *testing.T) {
		t.Parallel()

		a := &travel.Dataset{Temples: []travel.Place{{Name: "Angkor Wat, Cambodia"}}}
		b := &travel.Dataset{Temples: []travel.Place{{Name: "Angkor Wat, Cambodia"}}}

		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("changes when contents change", func(t *testing.T) {
		t.Parallel()

		a := &travel.Dataset{Temples: []travel.Place{{Name: "Angkor Wat, Cambodia"}}}
		b := &travel.Dataset{Temples: []travel.Place{{Name: "Taj Mahal, India"}}}

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
