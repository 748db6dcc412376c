package odds

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/gkratosBR/Glitch-Arena/internal/api/dto/odds"
	"github.com/gkratosBR/Glitch-Arena/internal/converter"
	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/middleware"
	"github.com/gkratosBR/Glitch-Arena/internal/service"
	oddsserv "github.com/gkratosBR/Glitch-Arena/internal/service/odds"
	"github.com/gkratosBR/Glitch-Arena/pkg/req"
	"github.com/gkratosBR/Glitch-Arena/pkg/resp"
)

type HandlerDeps struct {
	Serv service.OddsService
}

type Handler struct {
	serv service.OddsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Connect привязывает игровой аккаунт к текущему пользователю
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.ConnectRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	acct, err := h.serv.Connect(r.Context(), userID, payload.RiotID, payload.GameType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConnectResponse(*acct))
}

// Disconnect отвязывает игровой аккаунт от текущего пользователя
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	gameType := r.URL.Query().Get("game")
	if gameType == "" {
		gameType = engine.GameTypeLoL
	}

	if err := h.serv.Disconnect(r.Context(), userID, gameType); err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "disconnected"})
}

// Challenges возвращает меню вызовов для привязанного аккаунта
func (h *Handler) Challenges(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	gameType := r.URL.Query().Get("game")
	if gameType == "" {
		gameType = engine.GameTypeLoL
	}

	menu, err := h.serv.GetChallenges(r.Context(), userID, gameType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, menu)
}

// Custom котирует пользовательскую цель по убийствам
func (h *Handler) Custom(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.CustomRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	challenge, err := h.serv.RequestCustom(r.Context(), userID, payload.GameType, payload.Target)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, challenge)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, oddsserv.ErrUnsupportedGame),
		errors.Is(err, oddsserv.ErrNoLinkedAccount),
		errors.Is(err, oddsserv.ErrAccountRejected),
		errors.Is(err, engine.ErrTargetNotInteger),
		errors.Is(err, engine.ErrTargetTooLow),
		errors.Is(err, engine.ErrTargetUnviable):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("odds error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
