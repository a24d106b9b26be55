// Package sim implements the Wuxing Bubbles board simulation.
// It is UI-agnostic and deterministic for a given random source: the
// platform layer drives it through Session and reads state back through
// snapshots.
package sim

import "strings"

// Element is one of the five cyclic elements carried by a bubble.
type Element uint8

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
	ElementCount // Sentinel value for iteration
)

// growsTable is the Sheng cycle: Wood->Fire->Earth->Metal->Water->Wood.
var growsTable = [ElementCount]Element{Fire, Earth, Metal, Water, Wood}

// controlsTable is the Ke cycle: Wood->Earth->Water->Fire->Metal->Wood.
var controlsTable = [ElementCount]Element{Earth, Metal, Water, Wood, Fire}

// Grows returns the element that e nurtures (its Sheng child).
func Grows(e Element) Element {
	return growsTable[e%ElementCount]
}

// Controls returns the element that e suppresses (its Ke target).
func Controls(e Element) Element {
	return controlsTable[e%ElementCount]
}

// String returns the display name of the element.
func (e Element) String() string {
	switch e {
	case Wood:
		return "Wood"
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Metal:
		return "Metal"
	case Water:
		return "Water"
	default:
		return "Unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (e Element) Char() rune {
	switch e {
	case Wood:
		return 'W'
	case Fire:
		return 'F'
	case Earth:
		return 'E'
	case Metal:
		return 'M'
	case Water:
		return 'A'
	default:
		return '?'
	}
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	return e < ElementCount
}

// ParseElement converts a name or single-letter code to an Element.
func ParseElement(s string) (Element, bool) {
	switch strings.ToLower(s) {
	case "wood", "w":
		return Wood, true
	case "fire", "f":
		return Fire, true
	case "earth", "e":
		return Earth, true
	case "metal", "m":
		return Metal, true
	case "water", "a":
		return Water, true
	default:
		return Wood, false
	}
}

// AllElements returns the five elements in cycle order.
func AllElements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// Rand is the random source used by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Fair draw weighting.
const (
	fairPenalty   = 0.25
	fairMinWeight = 0.15
)

// RandomElement draws a uniformly random element.
func RandomElement(rng Rand) Element {
	return Element(rng.Intn(int(ElementCount)))
}

// FairWeights returns the draw weight of every element given recent history.
// Each weight is max(0.15, 1 - 0.25*count) so no element is ever excluded.
func FairWeights(history []Element) [ElementCount]float64 {
	var counts [ElementCount]int
	for _, e := range history {
		if e.Valid() {
			counts[e]++
		}
	}

	var weights [ElementCount]float64
	for i, c := range counts {
		weights[i] = max(fairMinWeight, 1-float64(c)*fairPenalty)
	}
	return weights
}

// DrawFair draws an element weighted against the ones seen in history.
func DrawFair(history []Element, rng Rand) Element {
	weights := FairWeights(history)

	total := 0.0
	for _, w := range weights {
		total += w
	}

	u := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if cum >= u {
			return Element(i)
		}
	}

	// Only reachable through float rounding at the top of the range
	return RandomElement(rng)
}
