package wallet

import (
	"context"
	"strings"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// ConvertBonus - перенос отыгранного бонуса в реальный кошелёк.
// Требует практически закрытого роловера
func (s *serv) ConvertBonus(ctx context.Context, userID int) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if user.BonusWallet <= 0 {
			return ErrNoBonus
		}
		if user.RolloverTarget > rolloverEpsilon {
			return ErrRolloverPending
		}

		return s.userRepo.ConvertBonus(ctx, userID)
	})
}

// RedeemCoupon - активация бонусного купона. Купон зачисляет бонус
// и навешивает роловер: бонус надо отыграть прежде чем выводить
func (s *serv) RedeemCoupon(ctx context.Context, userID int, code string) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return 0, err
	}

	var credited float64

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		coupon, err := s.couponRepo.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if coupon == nil || !coupon.Active || coupon.Type == model.CouponDeposit {
			return ErrCouponInvalid
		}
		if coupon.MaxUses > 0 && coupon.CurrentUses >= coupon.MaxUses {
			return ErrCouponExhausted
		}

		used, err := s.couponRepo.HasUsage(ctx, userID, code)
		if err != nil {
			return err
		}
		if used {
			return ErrCouponUsed
		}

		rollover := coupon.Amount * platform.Referral.RolloverMultiplier
		if err := s.userRepo.AdjustBalances(ctx, userID, 0, coupon.Amount, rollover); err != nil {
			return err
		}
		if err := s.couponRepo.IncrementUses(ctx, code); err != nil {
			return err
		}
		if err := s.couponRepo.RegisterUsage(ctx, userID, code, coupon.Amount); err != nil {
			return err
		}

		credited = coupon.Amount

		return nil
	})
	if err != nil {
		return 0, err
	}

	return credited, nil
}
