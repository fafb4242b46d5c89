package symbol_test

import (
	"math"
	"testing"

	"fruit_trio/internal/model"
	"fruit_trio/internal/service/symbol"

	"pgregory.net/rapid"
)

// sequenceRNG Возвращает значения из заданной последовательности
type sequenceRNG struct {
	values []int
	idx    int
}

func (r *sequenceRNG) IntN(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestPick_Boundaries(t *testing.T) {
	tests := []struct {
		draw int
		want model.Symbol
	}{
		{0, model.Apple},
		{17, model.Apple},
		{18, model.Banana},
		{35, model.Banana},
		{36, model.Cherry},
		{52, model.Lemon},
		{68, model.Orange},
		{82, model.Plum},
		{94, model.Strawberry},
		{103, model.Strawberry},
		{104, model.Watermelon},
		{111, model.Watermelon},
	}

	for _, tt := range tests {
		g := symbol.NewGenerator(model.DefaultCatalog(), &sequenceRNG{values: []int{tt.draw}})
		if got := g.Pick(); got != tt.want {
			t.Errorf("draw %d: expected %s, got %s", tt.draw, tt.want, got)
		}
	}
}

func TestGenerator_Total(t *testing.T) {
	g := symbol.NewGenerator(model.DefaultCatalog(), symbol.StdRNG{})
	if g.Total() != 112 {
		t.Fatalf("expected total weight 112, got %d", g.Total())
	}
}

func TestPick_FrequenciesConverge(t *testing.T) {
	const draws = 100_000
	const tolerance = 0.01

	g := symbol.NewGenerator(model.DefaultCatalog(), symbol.StdRNG{})
	counts := make(map[model.Symbol]int)
	for range draws {
		counts[g.Pick()]++
	}

	for _, ws := range model.DefaultCatalog() {
		want := float64(ws.Weight) / 112
		got := float64(counts[ws.Symbol]) / draws
		if math.Abs(got-want) > tolerance {
			t.Errorf("%s: expected frequency %.4f, got %.4f", ws.Symbol, want, got)
		}
	}
}

func TestPick_SkipsNonPositiveWeights(t *testing.T) {
	catalog := []model.WeightedSymbol{
		{Symbol: model.Apple, Weight: 0},
		{Symbol: model.Plum, Weight: 3},
	}
	g := symbol.NewGenerator(catalog, &sequenceRNG{values: []int{0, 1, 2}})
	for range 3 {
		if got := g.Pick(); got != model.Plum {
			t.Fatalf("expected Plum, got %s", got)
		}
	}
}

func TestForcedWin_BananasOnTopAndMiddle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		draws := rapid.SliceOfN(rapid.IntRange(0, 111), 3, 3).Draw(t, "draws")
		g := symbol.NewGenerator(model.DefaultCatalog(), &sequenceRNG{values: draws})

		res := g.ForcedWin()
		for r, triple := range res {
			if triple[model.RowTop] != model.Banana || triple[model.RowMid] != model.Banana {
				t.Fatalf("reel %d: expected Banana on top and middle, got %v", r, triple)
			}
			if !triple[model.RowBottom].IsKnown() {
				t.Fatalf("reel %d: unknown bottom symbol %q", r, triple[model.RowBottom])
			}
		}
	})
}

func TestOrdinary_NineIndependentDraws(t *testing.T) {
	rng := &sequenceRNG{values: []int{0, 18, 36, 52, 68, 82, 94, 104, 0}}
	g := symbol.NewGenerator(model.DefaultCatalog(), rng)

	res := g.Ordinary()
	if rng.idx != 9 {
		t.Fatalf("expected 9 draws, got %d", rng.idx)
	}

	want := model.SpinResult{
		{model.Apple, model.Banana, model.Cherry},
		{model.Lemon, model.Orange, model.Plum},
		{model.Strawberry, model.Watermelon, model.Apple},
	}
	if res != want {
		t.Errorf("expected %v, got %v", want, res)
	}
}

func TestStrip_Length(t *testing.T) {
	g := symbol.NewGenerator(model.DefaultCatalog(), symbol.StdRNG{})
	for _, n := range []int{0, 12, 16} {
		if got := len(g.Strip(n)); got != n {
			t.Errorf("expected strip of %d, got %d", n, got)
		}
	}
}
