package wallet

import (
	"context"
	"fmt"
)

// Deposit - зачисление депозита на реальный кошелёк
func (s *serv) Deposit(ctx context.Context, userID int, amount float64) error {
	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return err
	}
	if amount < platform.Payment.MinDeposit {
		return fmt.Errorf("%w: min deposit %.2f", ErrBelowMinimum, platform.Payment.MinDeposit)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.userRepo.RecordDeposit(ctx, userID, amount); err != nil {
			return err
		}

		return s.paymentRepo.CreateDeposit(ctx, userID, amount)
	})
}

// Withdraw - вывод средств. Выводится только реальный кошелёк,
// бонусный баланс недоступен для вывода
func (s *serv) Withdraw(ctx context.Context, userID int, amount float64) error {
	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return err
	}
	if amount < platform.Payment.MinWithdrawal {
		return fmt.Errorf("%w: min withdrawal %.2f", ErrBelowMinimum, platform.Payment.MinWithdrawal)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Wallet < amount {
			return ErrInsufficientFunds
		}

		if err := s.userRepo.AdjustBalances(ctx, userID, -amount, 0, 0); err != nil {
			return err
		}

		return s.paymentRepo.CreateWithdrawal(ctx, userID, amount)
	})
}
