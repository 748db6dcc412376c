package wallet

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

var (
	ErrBelowMinimum      = errors.New("amount below minimum")
	ErrInsufficientFunds = errors.New("insufficient glitchcoins")
	ErrNoBonus           = errors.New("no bonus balance")
	ErrRolloverPending   = errors.New("rollover requirement not met")
	ErrCouponInvalid     = errors.New("coupon invalid")
	ErrCouponUsed        = errors.New("coupon already used")
	ErrCouponExhausted   = errors.New("coupon uses exhausted")
)

// Остаток роловера, при котором бонус считается отыгранным
const rolloverEpsilon = 0.50

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	platformRepo repository.PlatformRepository
	couponRepo   repository.CouponRepository
	paymentRepo  repository.PaymentRepository
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	platformRepo repository.PlatformRepository,
	couponRepo repository.CouponRepository,
	paymentRepo repository.PaymentRepository,
) *serv {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		platformRepo: platformRepo,
		couponRepo:   couponRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *serv) Balance(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
