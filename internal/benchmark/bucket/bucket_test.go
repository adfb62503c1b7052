// internal/benchmark/bucket/bucket_test.go
package bucket

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromARR(t *testing.T) {
	tests := []struct {
		name     string
		arr      float64
		expected Bucket
	}{
		{"zero", 0, Under10M},
		{"just below ten million", 9_999_999, Under10M},
		{"exactly ten million", 10_000_000, From10M},
		{"inside 10-25", 17_500_000, From10M},
		{"exactly 25 million", 25_000_000, From25M},
		{"exactly 50 million", 50_000_000, From50M},
		{"just below 100 million", 99_999_999.99, From50M},
		{"exactly 100 million", 100_000_000, From100M},
		{"exactly 200 million", 200_000_000, Over200M},
		{"unbounded above", 5_000_000_000, Over200M},
		{"negative", -1, Under10M},
		{"NaN", math.NaN(), Under10M},
		{"positive infinity", math.Inf(1), Over200M},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromARR(tt.arr))
		})
	}
}

func TestFromLabel(t *testing.T) {
	t.Run("valid labels pass through", func(t *testing.T) {
		for _, b := range All() {
			assert.Equal(t, b, FromLabel(string(b)))
		}
	})

	t.Run("unknown label falls back to default", func(t *testing.T) {
		assert.Equal(t, From10M, FromLabel("$1B+"))
		assert.Equal(t, From10M, FromLabel(""))
		assert.Equal(t, From10M, FromLabel("<$10m"))
	})

	t.Run("lookup reports resolution", func(t *testing.T) {
		b, ok := Lookup("$200M+")
		assert.True(t, ok)
		assert.Equal(t, Over200M, b)

		b, ok = Lookup("huge")
		assert.False(t, ok)
		assert.Equal(t, Default, b)
	})
}

func TestBucket_Index(t *testing.T) {
	for i, b := range All() {
		assert.Equal(t, i, b.Index())
		assert.True(t, b.Valid())
	}
	assert.Equal(t, 1, Bucket("bogus").Index())
	assert.False(t, Bucket("bogus").Valid())
	assert.Equal(t, float64(50_000_000), From50M.LowerBound())
}

func TestAll_ReturnsCopy(t *testing.T) {
	buckets := All()
	buckets[0] = "mutated"
	assert.Equal(t, Under10M, All()[0])
}

func TestStageFromARRMillions(t *testing.T) {
	tests := []struct {
		arr      float64
		expected Stage
	}{
		{0, StageUnder5M},
		{4.99, StageUnder5M},
		{5, Stage5To10M},
		{10, Stage10To50M},
		{49.9, Stage10To50M},
		{50, StageOver50M},
		{-3, StageUnder5M},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StageFromARRMillions(tt.arr), "arr=%v", tt.arr)
	}
	assert.Len(t, Stages(), 4)
}
