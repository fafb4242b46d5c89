package model

// Symbol Символ барабана
type Symbol string

const (
	Apple      Symbol = "Apple"
	Banana     Symbol = "Banana"
	Cherry     Symbol = "Cherry"
	Lemon      Symbol = "Lemon"
	Orange     Symbol = "Orange"
	Plum       Symbol = "Plum"
	Strawberry Symbol = "Strawberry"
	Watermelon Symbol = "Watermelon"
)

// WeightedSymbol Символ с весом для выборки
type WeightedSymbol struct {
	Symbol Symbol
	Weight int
}

// DefaultCatalog Каталог символов и их весов (сумма 112).
// Порядок важен: выборка идёт по кумулятивной сумме в этом порядке.
func DefaultCatalog() []WeightedSymbol {
	return []WeightedSymbol{
		{Symbol: Apple, Weight: 18},
		{Symbol: Banana, Weight: 18},
		{Symbol: Cherry, Weight: 16},
		{Symbol: Lemon, Weight: 16},
		{Symbol: Orange, Weight: 14},
		{Symbol: Plum, Weight: 12},
		{Symbol: Strawberry, Weight: 10},
		{Symbol: Watermelon, Weight: 8},
	}
}

// IsKnown Проверка, что символ есть в стандартном каталоге
func (s Symbol) IsKnown() bool {
	for _, ws := range DefaultCatalog() {
		if ws.Symbol == s {
			return true
		}
	}
	return false
}
