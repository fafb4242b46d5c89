package game

type Cell struct {
	Symbol string `json:"symbol"`
	Image  string `json:"image"` // Путь к картинке символа
}

type Reel struct {
	State string  `json:"state"` // idle, spinning, settling
	Cells [3]Cell `json:"cells"` // Верх, середина, низ
}

type StateResponse struct {
	Balance     string  `json:"balance"`
	Bet         string  `json:"bet"` // Всегда два знака после запятой
	WinUsed     bool    `json:"win_used"`
	Spinning    bool    `json:"spinning"`
	OverlayOpen bool    `json:"overlay_open"`
	CanSpin     bool    `json:"can_spin"`
	Reels       [3]Reel `json:"reels"`
}

type SpinResponse struct {
	Result      [3][3]string `json:"result"` // [барабан][строка]
	ForcedWin   bool         `json:"forced_win"`
	Bet         string       `json:"bet"`
	Payout      string       `json:"payout"`
	Balance     string       `json:"balance"`
	Highlighted [3][3]bool   `json:"highlighted"`
}

// RejectedResponse Отказ с неизменённым состоянием сессии
type RejectedResponse struct {
	Error string        `json:"error"`
	State StateResponse `json:"state"`
}
