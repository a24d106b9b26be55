package sim

import (
	"math/rand"
	"testing"
)

// scriptedRand replays fixed values so tests can pin exact draws.
// Exhausted scripts fall back to zero.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if r.fi >= len(r.floats) {
		return 0
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if r.ii >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ii]
	r.ii++
	return v % n
}

func TestRelationsAreSingleFiveCycles(t *testing.T) {
	relations := map[string]func(Element) Element{
		"grows":    Grows,
		"controls": Controls,
	}

	for name, rel := range relations {
		t.Run(name, func(t *testing.T) {
			seen := make(map[Element]bool)
			e := Wood
			for i := 0; i < int(ElementCount); i++ {
				next := rel(e)
				if next == e {
					t.Errorf("%s(%v) is a fixed point", name, e)
				}
				if seen[e] {
					t.Fatalf("%s revisits %v before closing the cycle", name, e)
				}
				seen[e] = true
				e = next
			}
			if e != Wood {
				t.Errorf("%s cycle does not return to Wood after 5 steps, ended at %v", name, e)
			}
		})
	}

	for _, e := range AllElements() {
		if Controls(e) == Grows(e) {
			t.Errorf("Controls(%v) == Grows(%v) == %v", e, e, Grows(e))
		}
	}
}

func TestRelationTables(t *testing.T) {
	tests := []struct {
		e        Element
		grows    Element
		controls Element
	}{
		{Wood, Fire, Earth},
		{Fire, Earth, Metal},
		{Earth, Metal, Water},
		{Metal, Water, Wood},
		{Water, Wood, Fire},
	}

	for _, tc := range tests {
		if got := Grows(tc.e); got != tc.grows {
			t.Errorf("Grows(%v) = %v, expected %v", tc.e, got, tc.grows)
		}
		if got := Controls(tc.e); got != tc.controls {
			t.Errorf("Controls(%v) = %v, expected %v", tc.e, got, tc.controls)
		}
	}
}

func TestParseElement(t *testing.T) {
	for _, e := range AllElements() {
		got, ok := ParseElement(e.String())
		if !ok || got != e {
			t.Errorf("ParseElement(%q) = %v, %v", e.String(), got, ok)
		}
	}
	if _, ok := ParseElement("aether"); ok {
		t.Error("ParseElement should reject unknown names")
	}
}

func TestFairWeights(t *testing.T) {
	tests := []struct {
		name    string
		history []Element
		want    [ElementCount]float64
	}{
		{"empty history", nil, [ElementCount]float64{1, 1, 1, 1, 1}},
		{"one of each", []Element{Wood, Fire, Earth}, [ElementCount]float64{0.75, 0.75, 0.75, 1, 1}},
		{"triple repeat", []Element{Water, Water, Water}, [ElementCount]float64{1, 1, 1, 1, 0.25}},
		{"floor applies", []Element{Metal, Metal, Metal, Metal, Metal}, [ElementCount]float64{1, 1, 1, 0.15, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FairWeights(tc.history)
			for i := range got {
				if diff := got[i] - tc.want[i]; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("weight[%v] = %f, expected %f", Element(i), got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDrawFairPicksCumulativeBucket(t *testing.T) {
	tests := []struct {
		name    string
		history []Element
		sample  float64
		want    Element
	}{
		{"zero sample", nil, 0, Wood},
		{"middle of uniform", nil, 0.5, Earth},
		{"top of uniform", nil, 0.9999, Water},
		{"bucket edge is inclusive", nil, 0.2, Wood},
		{"discouraged wood still reachable", []Element{Wood, Wood, Wood}, 0.05, Wood},
		{"just past discouraged wood", []Element{Wood, Wood, Wood}, 0.06, Fire},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{tc.sample}}
			if got := DrawFair(tc.history, rng); got != tc.want {
				t.Errorf("DrawFair(%v, %f) = %v, expected %v", tc.history, tc.sample, got, tc.want)
			}
		})
	}
}

func TestDrawFairRoundingFallsBackToUniform(t *testing.T) {
	// A sample past the last bucket only happens through float rounding.
	rng := &scriptedRand{floats: []float64{1.5}, ints: []int{1}}
	if got := DrawFair(nil, rng); got != Fire {
		t.Errorf("DrawFair() = %v, expected the uniform draw Fire", got)
	}
}

func TestDrawFairNeverExcludesAnElement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	history := []Element{Fire, Fire, Fire}

	var counts [ElementCount]int
	for i := 0; i < 20000; i++ {
		e := DrawFair(history, rng)
		if !e.Valid() {
			t.Fatalf("DrawFair returned out-of-range element %d", e)
		}
		counts[e]++
	}

	for i, c := range counts {
		if c == 0 {
			t.Errorf("%v was never drawn", Element(i))
		}
	}
	if counts[Fire] >= counts[Wood] {
		t.Errorf("recently seen Fire drawn %d times, expected fewer than Wood (%d)", counts[Fire], counts[Wood])
	}
}
