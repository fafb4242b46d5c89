package model

// Состояние казино по всем сессиям
type CasinoState struct {
	TotalSpins  int     // Сколько всего спинов сделано
	ForcedWins  int     // Сколько выдано выигрышей первого спина
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult // Окно последних спинов
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinResult struct {
	Bet    float64
	Payout float64
	RTP    float64
}
