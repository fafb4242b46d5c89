package symbol

import (
	"math/rand/v2"

	"fruit_trio/internal/model"
)

// RNG Источник случайности, подменяется в тестах
type RNG interface {
	// IntN возвращает число в [0, n)
	IntN(n int) int
}

// StdRNG Источник на math/rand/v2 (сидируется автоматически)
type StdRNG struct{}

func (StdRNG) IntN(n int) int { return rand.IntN(n) }

// Generator Взвешенный выбор символов
type Generator struct {
	symbols    []model.Symbol
	cumulative []int
	total      int
	rng        RNG
}

// NewGenerator Создать генератор по каталогу. Символы с весом <= 0 пропускаются
func NewGenerator(catalog []model.WeightedSymbol, rng RNG) *Generator {
	g := &Generator{
		symbols:    make([]model.Symbol, 0, len(catalog)),
		cumulative: make([]int, 0, len(catalog)),
		rng:        rng,
	}
	for _, ws := range catalog {
		if ws.Weight <= 0 {
			continue
		}
		g.total += ws.Weight
		g.symbols = append(g.symbols, ws.Symbol)
		g.cumulative = append(g.cumulative, g.total)
	}
	if g.total == 0 {
		panic("symbol catalog has no positive weights")
	}
	return g
}

// Total Сумма весов
func (g *Generator) Total() int {
	return g.total
}

// Pick Один символ с вероятностью weight/total. Тратит ровно одно обращение к RNG
func (g *Generator) Pick() model.Symbol {
	num := g.rng.IntN(g.total)

	lo, hi := 0, len(g.cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if num < g.cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return g.symbols[lo]
}

// Triple Три независимых символа
func (g *Generator) Triple() model.Triple {
	return model.Triple{g.Pick(), g.Pick(), g.Pick()}
}

// Strip Лента из n случайных символов для анимации
func (g *Generator) Strip(n int) []model.Symbol {
	strip := make([]model.Symbol, n)
	for i := range strip {
		strip[i] = g.Pick()
	}
	return strip
}

// Ordinary Обычный спин: 9 независимых символов
func (g *Generator) Ordinary() model.SpinResult {
	var res model.SpinResult
	for r := range res {
		res[r] = g.Triple()
	}
	return res
}

// ForcedWin Выигрыш первого спина: верх и середина каждого барабана - банан,
// низ выбирается обычным образом и тоже может оказаться бананом.
func (g *Generator) ForcedWin() model.SpinResult {
	var res model.SpinResult
	for r := range res {
		res[r] = model.Triple{model.Banana, model.Banana, g.Pick()}
	}
	return res
}
