package game

import (
	"errors"
	"net/http"

	dto "fruit_trio/internal/api/dto/game"
	"fruit_trio/internal/converter"
	"fruit_trio/internal/middleware"
	"fruit_trio/internal/model"
	"fruit_trio/internal/service"
	"fruit_trio/pkg/resp"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Lobby  service.LobbyService
	Assets model.Assets
	Log    *zap.Logger
}

type Handler struct {
	lobby    service.LobbyService
	assets   model.Assets
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		lobby:  deps.Lobby,
		assets: deps.Assets,
		log:    deps.Log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) table(w http.ResponseWriter, r *http.Request) (*service.Table, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return nil, false
	}
	return h.lobby.Table(r.Context(), sessionID), true
}

func (h *Handler) writeState(w http.ResponseWriter, status int, slot service.SlotService) {
	resp.WriteJSONResponse(w, status, converter.ToStateResponse(slot.State(), slot.Reels(), h.assets))
}

// writeRejected Отказ в действии: 409 и текущее (не изменённое) состояние
func (h *Handler) writeRejected(w http.ResponseWriter, err error, slot service.SlotService) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrSpinInProgress),
		errors.Is(err, model.ErrInsufficientBalance),
		errors.Is(err, model.ErrBetLocked):
		status = http.StatusConflict
	default:
		h.log.Error("game action failed", zap.Error(err))
	}

	resp.WriteJSONResponse(w, status, dto.RejectedResponse{
		Error: err.Error(),
		State: converter.ToStateResponse(slot.State(), slot.Reels(), h.assets),
	})
}

// Spin Отвечает после остановки всех барабанов
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}

	result, err := t.Slot.Spin(r.Context())
	if err != nil {
		h.writeRejected(w, err, t.Slot)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) IncreaseBet(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}
	if _, err := t.Slot.IncreaseBet(); err != nil {
		h.writeRejected(w, err, t.Slot)
		return
	}
	h.writeState(w, http.StatusOK, t.Slot)
}

func (h *Handler) DecreaseBet(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}
	if _, err := t.Slot.DecreaseBet(); err != nil {
		h.writeRejected(w, err, t.Slot)
		return
	}
	h.writeState(w, http.StatusOK, t.Slot)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}
	t.Slot.Reset()
	h.writeState(w, http.StatusOK, t.Slot)
}

func (h *Handler) CloseOverlay(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}
	t.Slot.CloseOverlay()
	h.writeState(w, http.StatusOK, t.Slot)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}
	h.writeState(w, http.StatusOK, t.Slot)
}

// Connect Поднимает websocket зрителя и сразу присылает ему текущую картинку
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	t, ok := h.table(w, r)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	t.View.Serve(conn, t.Slot.Redraw)
}
