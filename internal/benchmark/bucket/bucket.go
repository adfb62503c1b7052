// internal/benchmark/bucket/bucket.go
package bucket

import "math"

// Bucket is an ARR scale range used as the key for most benchmark lookups.
type Bucket string

const (
	Under10M Bucket = "<$10M"
	From10M  Bucket = "$10M-$25M"
	From25M  Bucket = "$25M-$50M"
	From50M  Bucket = "$50M-$100M"
	From100M Bucket = "$100M-$200M"
	Over200M Bucket = "$200M+"
)

// Default is used whenever a label cannot be resolved.
const Default = From10M

// ordered buckets and their inclusive lower bounds in dollars. The last
// bucket is unbounded above.
var (
	ordered     = [...]Bucket{Under10M, From10M, From25M, From50M, From100M, Over200M}
	lowerBounds = [...]float64{0, 10_000_000, 25_000_000, 50_000_000, 100_000_000, 200_000_000}
)

// All returns the buckets in ascending order.
func All() []Bucket {
	out := make([]Bucket, len(ordered))
	copy(out, ordered[:])
	return out
}

// FromARR classifies a dollar ARR value using half-open ranges.
// Negative and NaN values land in the smallest bucket.
func FromARR(arr float64) Bucket {
	if math.IsNaN(arr) {
		return Under10M
	}
	for i := len(lowerBounds) - 1; i > 0; i-- {
		if arr >= lowerBounds[i] {
			return ordered[i]
		}
	}
	return Under10M
}

// FromLabel returns a valid label unchanged and the default bucket for
// anything else.
func FromLabel(label string) Bucket {
	b, _ := Lookup(label)
	return b
}

// Lookup is FromLabel with a flag reporting whether the label was known.
func Lookup(label string) (Bucket, bool) {
	for _, b := range ordered {
		if string(b) == label {
			return b, true
		}
	}
	return Default, false
}

// Valid reports whether b is one of the fixed buckets.
func (b Bucket) Valid() bool {
	_, ok := Lookup(string(b))
	return ok
}

// Index is the position of b in ascending order; unknown buckets report the
// default bucket's index.
func (b Bucket) Index() int {
	resolved := FromLabel(string(b))
	for i, o := range ordered {
		if o == resolved {
			return i
		}
	}
	return 1
}

// LowerBound is the inclusive lower bound of b in dollars.
func (b Bucket) LowerBound() float64 {
	return lowerBounds[b.Index()]
}

func (b Bucket) String() string {
	return string(b)
}

// Stage is the coarser scale used by funding efficiency benchmarks. It is
// keyed by current ARR in millions.
type Stage string

const (
	StageUnder5M Stage = "<$5M"
	Stage5To10M  Stage = "$5M-$10M"
	Stage10To50M Stage = "$10M-$50M"
	StageOver50M Stage = "$50M+"
)

const DefaultStage = Stage10To50M

// StageFromARRMillions classifies current ARR expressed in $M.
func StageFromARRMillions(arr float64) Stage {
	switch {
	case math.IsNaN(arr) || arr < 5:
		return StageUnder5M
	case arr < 10:
		return Stage5To10M
	case arr < 50:
		return Stage10To50M
	default:
		return StageOver50M
	}
}

// Stages returns the funding stages in ascending order.
func Stages() []Stage {
	return []Stage{StageUnder5M, Stage5To10M, Stage10To50M, StageOver50M}
}
