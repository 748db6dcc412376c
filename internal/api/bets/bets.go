package bets

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/gkratosBR/Glitch-Arena/internal/api/dto/bets"
	"github.com/gkratosBR/Glitch-Arena/internal/converter"
	"github.com/gkratosBR/Glitch-Arena/internal/middleware"
	"github.com/gkratosBR/Glitch-Arena/internal/service"
	betserv "github.com/gkratosBR/Glitch-Arena/internal/service/bets"
	"github.com/gkratosBR/Glitch-Arena/pkg/req"
	"github.com/gkratosBR/Glitch-Arena/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BetService
}

type Handler struct {
	serv service.BetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Place принимает ставку из ног меню
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	bet, err := h.serv.PlaceBet(r.Context(), userID, payload.Amount, payload.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToBetResponse(*bet))
}

// Active возвращает нерассчитанные ставки пользователя
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.serv.ActiveBets(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponses(list))
}

// History возвращает рассчитанные ставки пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.serv.History(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponses(list))
}

// Limit возвращает действующий лимит ставки
func (h *Handler) Limit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, err := h.serv.BetLimit(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LimitResponse{Limit: limit})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, betserv.ErrInvalidBet),
		errors.Is(err, betserv.ErrNoLinkedAccount),
		errors.Is(err, betserv.ErrLimitExceeded),
		errors.Is(err, betserv.ErrInsufficientFunds),
		errors.Is(err, betserv.ErrPlayerInGame),
		errors.Is(err, betserv.ErrConflictingLegs):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("bets error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
