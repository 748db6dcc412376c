package admin

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/gkratosBR/Glitch-Arena/internal/api/dto/admin"
	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/service"
	adminserv "github.com/gkratosBR/Glitch-Arena/internal/service/admin"
	"github.com/gkratosBR/Glitch-Arena/pkg/req"
	"github.com/gkratosBR/Glitch-Arena/pkg/resp"
)

type HandlerDeps struct {
	Serv       service.AdminService
	Settlement service.SettlementService
}

type Handler struct {
	serv       service.AdminService
	settlement service.SettlementService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		settlement: deps.Settlement,
	}
}

// GetConfig возвращает действующий операторский конфиг
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.serv.GetConfig(r.Context())
	if err != nil {
		log.Println("admin config error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, cfg)
}

// UpdateConfig заменяет операторский конфиг целиком
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[config.Platform](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.UpdateConfig(r.Context(), payload); err != nil {
		if errors.Is(err, adminserv.ErrInvalidConfig) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("admin config error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Resolve запускает внеочередной проход расчёта ставок
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	if err := h.settlement.ResolveOnce(r.Context()); err != nil {
		log.Println("manual resolve error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetKYC меняет KYC-статус пользователя
func (h *Handler) SetKYC(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.KYCRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.SetKYC(r.Context(), payload.UserID, payload.Status); err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
