package wallet

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/gkratosBR/Glitch-Arena/internal/api/dto/wallet"
	"github.com/gkratosBR/Glitch-Arena/internal/converter"
	"github.com/gkratosBR/Glitch-Arena/internal/middleware"
	"github.com/gkratosBR/Glitch-Arena/internal/service"
	walletserv "github.com/gkratosBR/Glitch-Arena/internal/service/wallet"
	"github.com/gkratosBR/Glitch-Arena/pkg/req"
	"github.com/gkratosBR/Glitch-Arena/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Balance возвращает кошельки и накопительные показатели пользователя
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(*user))
}

// Deposit зачисляет депозит на реальный кошелёк
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.Deposit(r.Context(), userID, payload.Amount); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Withdraw выводит средства с реального кошелька
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.Withdraw(r.Context(), userID, payload.Amount); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConvertBonus переносит отыгранный бонус в реальный кошелёк
func (h *Handler) ConvertBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.serv.ConvertBonus(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RedeemCoupon активирует бонусный купон
func (h *Handler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.CouponRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	credited, err := h.serv.RedeemCoupon(r.Context(), userID, payload.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.RedeemResponse{Credited: credited})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletserv.ErrBelowMinimum),
		errors.Is(err, walletserv.ErrInsufficientFunds),
		errors.Is(err, walletserv.ErrNoBonus),
		errors.Is(err, walletserv.ErrRolloverPending),
		errors.Is(err, walletserv.ErrCouponInvalid),
		errors.Is(err, walletserv.ErrCouponUsed),
		errors.Is(err, walletserv.ErrCouponExhausted):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("wallet error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
