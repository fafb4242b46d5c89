package ws

import (
	"sync"
	"time"

	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub Слой отображения поверх websocket для одной игровой сессии.
// Все подключённые вкладки получают одни и те же события, завершение перехода принимается от любой.
// Пока никого нет, переходы завершаются по таймеру.
type Hub struct {
	mtx      sync.Mutex
	clients  map[*client]struct{}
	pending  map[uint64]chan struct{}
	seq      uint64
	listener presenter.Listener

	assets model.Assets
	log    *zap.Logger
}

var _ presenter.Presenter = (*Hub)(nil)

func NewHub(assets model.Assets, log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		pending: make(map[uint64]chan struct{}),
		assets:  assets,
		log:     log,
	}
}

// SetListener Кому отдавать сигналы видео
func (h *Hub) SetListener(l presenter.Listener) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.listener = l
}

// Connected Количество подключённых зрителей
func (h *Hub) Connected() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return len(h.clients)
}

// Serve Обслуживает соединение до его закрытия.
// onJoin вызывается, когда зритель уже получает события
func (h *Hub) Serve(conn *websocket.Conn, onJoin func()) {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mtx.Lock()
	h.clients[c] = struct{}{}
	h.mtx.Unlock()
	h.log.Debug("viewer connected", zap.String("remote", conn.RemoteAddr().String()))

	go h.writePump(c)
	if onJoin != nil {
		onJoin()
	}
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.mtx.Lock()
		h.dropLocked(c)
		h.mtx.Unlock()
		_ = c.conn.Close()
		h.log.Debug("viewer disconnected", zap.String("remote", c.conn.RemoteAddr().String()))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("viewer read failed", zap.Error(err))
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Warn("invalid viewer message", zap.Error(err))
			continue
		}
		h.dispatch(msg)
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) dispatch(msg inbound) {
	switch msg.Type {
	case inTransitionEnd:
		h.mtx.Lock()
		h.resolveLocked(msg.Seq)
		h.mtx.Unlock()
	case inVideoEnded:
		if l := h.getListener(); l != nil {
			l.OnVideoEnded()
		}
	case inPlaybackFailed:
		if l := h.getListener(); l != nil {
			l.OnPlaybackFailed(msg.Reason)
		}
	default:
		h.log.Warn("unknown viewer message", zap.String("type", msg.Type))
	}
}

func (h *Hub) getListener() presenter.Listener {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.listener
}

func (h *Hub) resolveLocked(seq uint64) {
	if done, ok := h.pending[seq]; ok {
		delete(h.pending, seq)
		close(done)
	}
}

// dropLocked Убирает зрителя. Если зрителей не осталось, незавершённые переходы считаются завершёнными
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)

	if len(h.clients) == 0 {
		for seq := range h.pending {
			h.resolveLocked(seq)
		}
	}
}

func (h *Hub) broadcast(ev event) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.broadcastLocked(ev)
}

func (h *Hub) broadcastLocked(ev event) {
	if len(h.clients) == 0 {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("failed to encode event", zap.String("type", ev.Type), zap.Error(err))
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Медленный зритель
			h.log.Warn("viewer send buffer is full, dropping", zap.String("remote", c.conn.RemoteAddr().String()))
			h.dropLocked(c)
		}
	}
}

func (h *Hub) Transition(reel int, strip []model.Symbol, offset int, duration time.Duration) <-chan struct{} {
	done := make(chan struct{})

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if len(h.clients) == 0 {
		time.AfterFunc(duration, func() { close(done) })
		return done
	}

	h.seq++
	seq := h.seq
	h.pending[seq] = done
	h.broadcastLocked(event{
		Type:       outTransition,
		Reel:       &reel,
		Seq:        seq,
		Strip:      h.cells(strip),
		Offset:     offset,
		DurationMs: duration.Milliseconds(),
	})
	return done
}

func (h *Hub) SetReelState(reel int, state model.ReelState) {
	h.broadcast(event{Type: outReelState, Reel: &reel, State: string(state)})
}

func (h *Hub) RenderCells(reel int, cells model.Triple) {
	h.broadcast(event{Type: outRenderCells, Reel: &reel, Strip: h.cells(cells[:])})
}

func (h *Hub) SetHighlight(reel, row int, on bool) {
	h.broadcast(event{Type: outHighlight, Reel: &reel, Row: &row, On: &on})
}

func (h *Hub) ClearHighlights() {
	h.broadcast(event{Type: outClearHighlights})
}

func (h *Hub) UpdateHUD(balance, bet decimal.Decimal) {
	h.broadcast(event{Type: outHUD, Balance: balance.String(), Bet: bet.StringFixed(2)})
}

func (h *Hub) OpenOverlay(video string) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if len(h.clients) == 0 {
		return model.ErrNoViewer
	}
	seek := 0.0
	h.broadcastLocked(event{Type: outOverlayOpen, Video: video, Seek: &seek})
	return nil
}

func (h *Hub) CloseOverlay() {
	h.broadcast(event{Type: outOverlayClose})
}

func (h *Hub) cells(symbols []model.Symbol) []cell {
	out := make([]cell, len(symbols))
	for i, s := range symbols {
		out[i] = cell{Symbol: string(s), Image: h.assets.SymbolImage(s)}
	}
	return out
}
