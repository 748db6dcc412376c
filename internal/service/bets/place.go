package bets

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// PlaceBet - приём ставки. Все ноги проверяются до транзакции,
// списание и вставка pending-ставки атомарны: или всё, или ничего
func (s *serv) PlaceBet(ctx context.Context, userID int, amount float64, items []model.Challenge) (*model.Bet, error) {
	if amount <= 0 || len(items) == 0 {
		return nil, ErrInvalidBet
	}

	// Взаимоисключающие рынки в одной ставке запрещены
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ConflictKey == "" {
			continue
		}
		if _, ok := seen[item.ConflictKey]; ok {
			return nil, ErrConflictingLegs
		}
		seen[item.ConflictKey] = struct{}{}
	}

	gameType := items[0].GameType
	acct, err := s.userRepo.GetLinkedAccount(ctx, userID, gameType)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrNoLinkedAccount
	}

	// Анти-снайпинг: во время своей партии игрок не ставит.
	// При ошибке Spectator API ставку пропускаем, а не блокируем
	if inGame, err := s.telemetry.InActiveGame(ctx, acct.PUUID); err == nil && inGame {
		return nil, ErrPlayerInGame
	}

	limit, err := s.BetLimit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > limit {
		return nil, fmt.Errorf("%w: limit %.2f", ErrLimitExceeded, limit)
	}

	totalOdd := 1.0
	for _, item := range items {
		totalOdd *= item.Odd
	}
	totalOdd = math.Round(totalOdd*100) / 100

	lastMatchID, err := s.telemetry.LastMatchID(ctx, acct.PUUID)
	if err != nil {
		return nil, err
	}

	bet := &model.Bet{
		ID:                uuid.NewString(),
		UserID:            userID,
		PUUID:             acct.PUUID,
		GameType:          gameType,
		Amount:            amount,
		TotalOdd:          totalOdd,
		PotentialWinnings: amount * totalOdd,
		Items:             items,
		Status:            model.BetPending,
		LastMatchID:       lastMatchID,
		CreatedAt:         time.Now(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Баланс перечитывается внутри транзакции
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if user.Wallet+user.BonusWallet < amount {
			return fmt.Errorf("%w: available %.2f", ErrInsufficientFunds, user.Wallet+user.BonusWallet)
		}

		// Сначала тратится реальный баланс, остаток из бонусного
		realPart := math.Min(user.Wallet, amount)
		bonusPart := amount - realPart
		bet.Split = model.StakeSplit{Real: realPart, Bonus: bonusPart}

		// Бонусная часть ставки уменьшает роловер
		if err := s.userRepo.AdjustBalances(ctx, userID, -realPart, -bonusPart, -bonusPart); err != nil {
			return err
		}
		if err := s.userRepo.RecordStake(ctx, userID, amount); err != nil {
			return err
		}

		return s.betRepo.CreateBet(ctx, bet)
	})
	if err != nil {
		return nil, err
	}

	return bet, nil
}
