package settlement

import (
	"context"
	"log"

	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// ResolveOnce - один проход по всем pending-ставкам.
// Ошибка телеметрии по одной ставке не прерывает проход:
// ставка остаётся pending до следующего тика
func (s *serv) ResolveOnce(ctx context.Context) error {
	pending, err := s.betRepo.ListPending(ctx)
	if err != nil {
		return err
	}

	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return err
	}
	minDuration := platform.System.MinMatchDurationSec

	for i := range pending {
		bet := pending[i]
		if err := s.resolveBet(ctx, &bet, minDuration); err != nil {
			log.Printf("bet %s left pending: %v", bet.ID, err)
		}
	}

	return nil
}

func (s *serv) resolveBet(ctx context.Context, bet *model.Bet, minDuration int) error {
	latestID, err := s.telemetry.LastMatchID(ctx, bet.PUUID)
	if err != nil {
		return err
	}
	// Новой партии ещё нет
	if latestID == "" || latestID == bet.LastMatchID {
		return nil
	}

	match, err := s.telemetry.MatchDetails(ctx, latestID)
	if err != nil {
		return err
	}

	verdict := engine.ResolveBet(*match, bet.PUUID, bet.Items, minDuration)

	if err := s.apply(ctx, bet, verdict); err != nil {
		return err
	}

	log.Printf("bet %s resolved: %s (%s)", bet.ID, verdict.Status, verdict.Reason)

	return nil
}

// apply - атомарное применение вердикта. Переход статуса охраняется
// условием "только из pending": повторный проход ничего не доплатит
func (s *serv) apply(ctx context.Context, bet *model.Bet, verdict model.Verdict) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		moved, err := s.betRepo.MarkResolved(ctx, bet.ID, verdict.Status)
		if err != nil {
			return err
		}
		// Ставку уже рассчитал параллельный проход
		if !moved {
			return nil
		}

		split := bet.Split

		switch verdict.Status {
		case model.BetVoid:
			// Возврат ровно того, что списывали, по тем же кошелькам
			if err := s.userRepo.AdjustBalances(ctx, bet.UserID, split.Real, split.Bonus, 0); err != nil {
				return err
			}

		case model.BetWon:
			// Выплата делится между кошельками пропорционально ставке
			ratio := 1.0
			if bet.Amount > 0 {
				ratio = split.Real / bet.Amount
			}
			win := bet.PotentialWinnings

			if err := s.userRepo.AdjustBalances(ctx, bet.UserID, win*ratio, win*(1-ratio), 0); err != nil {
				return err
			}
			if err := s.userRepo.RecordSettlement(ctx, bet.UserID, win-bet.Amount); err != nil {
				return err
			}
			if err := s.platformRepo.AddProfit(ctx, bet.Amount-win); err != nil {
				return err
			}

		case model.BetLost:
			if err := s.userRepo.RecordSettlement(ctx, bet.UserID, -bet.Amount); err != nil {
				return err
			}
			if err := s.platformRepo.AddProfit(ctx, bet.Amount); err != nil {
				return err
			}
		}

		return nil
	})
}
