package model

// ReelState Визуальное состояние барабана
type ReelState string

const (
	ReelIdle     ReelState = "idle"
	ReelSpinning ReelState = "spinning"
	ReelSettling ReelState = "settling"
)

// Reel Отрисованное состояние барабана.
// Cells всегда содержит ровно видимые символы: лишняя лента живёт только во время перехода.
type Reel struct {
	Index int
	Cells Triple
	State ReelState
}
