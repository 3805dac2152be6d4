package domain

import "fmt"

// Distance is either a known geodesic distance in miles or unknown,
// when the place has no usable coordinates. Unknown always orders last.
type Distance struct {
	miles float64
	known bool
}

func KnownDistance(miles float64) Distance { return Distance{miles: miles, known: true} }

func UnknownDistance() Distance { return Distance{} }

// Miles returns the distance and whether it is known.
func (d Distance) Miles() (float64, bool) { return d.miles, d.known }

func (d Distance) Known() bool { return d.known }

// Compare orders known distances ascending, then unknown.
// Two unknown distances compare equal.
func (d Distance) Compare(other Distance) int {
	switch {
	case d.known && !other.known:
		return -1
	case !d.known && other.known:
		return 1
	case !d.known && !other.known:
		return 0
	case d.miles < other.miles:
		return -1
	case d.miles > other.miles:
		return 1
	}
	return 0
}

func (d Distance) String() string {
	if !d.known {
		return "unknown"
	}
	return fmt.Sprintf("%.2f miles", d.miles)
}
