package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventHash(t *testing.T) {
	santiago := time.FixedZone("CLST", -3*3600)
	ts := time.Date(2025, 3, 10, 8, 59, 0, 0, santiago)

	t.Run("known digest", func(t *testing.T) {
		got := EventHash(ts, "12345678-5", "Ana", "Rojas Soto", MarkEntrance)
		assert.Equal(t, "d0a32303ec31b804d986224d44ff817c23c69dabf3de80d583ad05411400f5ec", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := EventHash(ts, "12345678-5", "Ana", "Rojas Soto", MarkEntrance)
		b := EventHash(ts, "12345678-5", "Ana", "Rojas Soto", MarkEntrance)
		assert.Equal(t, a, b)
	})

	t.Run("any field change flips the digest", func(t *testing.T) {
		base := EventHash(ts, "12345678-5", "Ana", "Rojas Soto", MarkEntrance)
		assert.NotEqual(t, base, EventHash(ts, "12345678-5", "Ana", "Rojas Soto", MarkExit))
		assert.NotEqual(t, base, EventHash(ts.Add(time.Second), "12345678-5", "Ana", "Rojas Soto", MarkEntrance))
		assert.NotEqual(t, base, EventHash(ts, "7654321-6", "Ana", "Rojas Soto", MarkEntrance))
		assert.NotEqual(t, base, EventHash(ts, "12345678-5", "Ana", "Rojas", MarkEntrance))
	})
}
