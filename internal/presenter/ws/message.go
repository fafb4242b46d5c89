package ws

// События для браузера
const (
	outTransition      = "transition"
	outReelState       = "reel_state"
	outRenderCells     = "render_cells"
	outHighlight       = "highlight"
	outClearHighlights = "clear_highlights"
	outHUD             = "hud"
	outOverlayOpen     = "overlay_open"
	outOverlayClose    = "overlay_close"
)

// Сигналы от браузера
const (
	inTransitionEnd  = "transition_end"
	inVideoEnded     = "video_ended"
	inPlaybackFailed = "playback_failed"
)

type cell struct {
	Symbol string `json:"symbol"`
	Image  string `json:"image"`
}

type event struct {
	Type       string   `json:"type"`
	Reel       *int     `json:"reel,omitempty"`
	Seq        uint64   `json:"seq,omitempty"`
	Strip      []cell   `json:"strip,omitempty"`
	Offset     int      `json:"offset,omitempty"`
	DurationMs int64    `json:"duration_ms,omitempty"`
	State      string   `json:"state,omitempty"`
	Row        *int     `json:"row,omitempty"`
	On         *bool    `json:"on,omitempty"`
	Balance    string   `json:"balance,omitempty"`
	Bet        string   `json:"bet,omitempty"`
	Video      string   `json:"video,omitempty"`
	Seek       *float64 `json:"seek,omitempty"`
}

type inbound struct {
	Type   string `json:"type"`
	Seq    uint64 `json:"seq,omitempty"`
	Reason string `json:"reason,omitempty"`
}
