package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelOutcome = "outcome"
	labelReason  = "reason"
)

const (
	OutcomeForced   = "forced"
	OutcomeOrdinary = "ordinary"
)

const (
	ReasonInProgress = "in_progress"
	ReasonBalance    = "balance"
	ReasonBetLocked  = "bet_locked"
	ReasonAnimation  = "animation_timeout"
	ReasonPlayback   = "playback"
	ReasonNoViewer   = "no_viewer"
)

var (
	spins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fruit_trio_spins_total",
		Help: "Completed spins",
	}, []string{labelOutcome})

	rejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fruit_trio_rejected_total",
		Help: "Rejected spin and bet requests",
	}, []string{labelReason})

	failures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fruit_trio_presentation_failures_total",
		Help: "Presentation layer failures (stalled transitions, video playback)",
	}, []string{labelReason})

	spinDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fruit_trio_spin_duration_seconds",
		Help:    "Time from spin start until all reels settled",
		Buckets: []float64{0.5, 1, 1.5, 2, 3, 5, 10},
	})

	gTotalBet    = promauto.NewGauge(prometheus.GaugeOpts{Name: "fruit_trio_total_bet", Help: "Sum of all bets"})
	gTotalPayout = promauto.NewGauge(prometheus.GaugeOpts{Name: "fruit_trio_total_payout", Help: "Sum of all payouts"})
	gRTP         = promauto.NewGauge(prometheus.GaugeOpts{Name: "fruit_trio_rtp_pct", Help: "RTP %"})
	gWindowRTP   = promauto.NewGauge(prometheus.GaugeOpts{Name: "fruit_trio_window_rtp_pct", Help: "RTP % over the recent spin window"})
	gSessions    = promauto.NewGauge(prometheus.GaugeOpts{Name: "fruit_trio_sessions", Help: "Live game sessions"})
)

func SpinCompleted(forced bool, seconds float64) {
	outcome := OutcomeOrdinary
	if forced {
		outcome = OutcomeForced
	}
	spins.WithLabelValues(outcome).Inc()
	spinDuration.Observe(seconds)
}

func Rejected(reason string) {
	rejected.WithLabelValues(reason).Inc()
}

func PresentationFailure(reason string) {
	failures.WithLabelValues(reason).Inc()
}

// SetTotals Выгружает статистику казино
func SetTotals(totalBet, totalPayout, rtp, windowRTP float64) {
	gTotalBet.Set(totalBet)
	gTotalPayout.Set(totalPayout)
	gRTP.Set(rtp)
	gWindowRTP.Set(windowRTP)
}

func SetSessions(n int) {
	gSessions.Set(float64(n))
}
