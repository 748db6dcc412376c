package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type balanceChange struct {
	wallet, bonus, rollover float64
}

type fakeUserRepo struct {
	repository.UserRepository

	adjustments []balanceChange
	settlements []float64
}

func (f *fakeUserRepo) AdjustBalances(_ context.Context, _ int, walletDelta, bonusDelta, rolloverDelta float64) error {
	f.adjustments = append(f.adjustments, balanceChange{walletDelta, bonusDelta, rolloverDelta})
	return nil
}

func (f *fakeUserRepo) RecordSettlement(_ context.Context, _ int, profitDelta float64) error {
	f.settlements = append(f.settlements, profitDelta)
	return nil
}

type fakeBetRepo struct {
	repository.BetRepository

	pending  []model.Bet
	statuses map[string]string
}

func (f *fakeBetRepo) ListPending(_ context.Context) ([]model.Bet, error) {
	return f.pending, nil
}

func (f *fakeBetRepo) MarkResolved(_ context.Context, id string, status string) (bool, error) {
	if f.statuses == nil {
		f.statuses = make(map[string]string)
	}
	if _, done := f.statuses[id]; done {
		return false, nil
	}
	f.statuses[id] = status
	return true, nil
}

type fakePlatformRepo struct {
	repository.PlatformRepository

	profit float64
}

func (f *fakePlatformRepo) GetConfig(_ context.Context) (config.Platform, error) {
	return config.DefaultPlatform(), nil
}

func (f *fakePlatformRepo) AddProfit(_ context.Context, delta float64) error {
	f.profit += delta
	return nil
}

type fakeTelemetry struct {
	lastMatchID string
	lastErr     error
	match       *model.Match
	matchErr    error
}

func (f *fakeTelemetry) LastMatchID(_ context.Context, _ string) (string, error) {
	return f.lastMatchID, f.lastErr
}

func (f *fakeTelemetry) MatchDetails(_ context.Context, _ string) (*model.Match, error) {
	return f.match, f.matchErr
}

func pendingBet() model.Bet {
	return model.Bet{
		ID:                "bet-1",
		UserID:            1,
		PUUID:             "puuid-bettor",
		GameType:          "lol",
		Amount:            4,
		TotalOdd:          2,
		PotentialWinnings: 8,
		Items: []model.Challenge{
			{ID: "win", TargetStat: "win", TargetValue: 1},
		},
		Split:       model.StakeSplit{Real: 3, Bonus: 1},
		Status:      model.BetPending,
		LastMatchID: "BR1_100",
	}
}

func wonMatch() *model.Match {
	return &model.Match{
		MatchID:      "BR1_101",
		GameDuration: 1800,
		Participants: []model.Participant{
			{PUUID: "puuid-bettor", TeamID: 100, Win: true, Kills: 5, Deaths: 2, Assists: 7},
			{PUUID: "puuid-enemy", TeamID: 200, Win: false, Kills: 3, Deaths: 5, Assists: 2},
		},
	}
}

func newTestService(bet model.Bet, telemetry *fakeTelemetry) (*serv, *fakeUserRepo, *fakeBetRepo, *fakePlatformRepo) {
	userRepo := &fakeUserRepo{}
	betRepo := &fakeBetRepo{pending: []model.Bet{bet}}
	platformRepo := &fakePlatformRepo{}

	return NewService(txManagerStub{}, userRepo, betRepo, platformRepo, telemetry), userRepo, betRepo, platformRepo
}

func TestResolveOnce_SkipsWithoutNewMatch(t *testing.T) {
	s, userRepo, betRepo, _ := newTestService(pendingBet(), &fakeTelemetry{lastMatchID: "BR1_100"})

	require.NoError(t, s.ResolveOnce(context.Background()))

	assert.Empty(t, betRepo.statuses)
	assert.Empty(t, userRepo.adjustments)
}

func TestResolveOnce_TelemetryErrorLeavesPending(t *testing.T) {
	telemetry := &fakeTelemetry{lastErr: errors.New("riot api: unexpected status 503")}
	s, userRepo, betRepo, platformRepo := newTestService(pendingBet(), telemetry)

	// Проход не падает, ставка остаётся pending до следующего тика
	require.NoError(t, s.ResolveOnce(context.Background()))

	assert.Empty(t, betRepo.statuses)
	assert.Empty(t, userRepo.adjustments)
	assert.InDelta(t, 0, platformRepo.profit, 1e-9)
}

func TestResolveOnce_WonPaysProportionalToSplit(t *testing.T) {
	telemetry := &fakeTelemetry{lastMatchID: "BR1_101", match: wonMatch()}
	s, userRepo, betRepo, platformRepo := newTestService(pendingBet(), telemetry)

	require.NoError(t, s.ResolveOnce(context.Background()))

	assert.Equal(t, model.BetWon, betRepo.statuses["bet-1"])

	// Ставка 4 со сплитом 3/1, выплата 8: 6 в реальный, 2 в бонусный
	require.Len(t, userRepo.adjustments, 1)
	assert.InDelta(t, 6.0, userRepo.adjustments[0].wallet, 1e-9)
	assert.InDelta(t, 2.0, userRepo.adjustments[0].bonus, 1e-9)
	assert.InDelta(t, 0.0, userRepo.adjustments[0].rollover, 1e-9)

	require.Len(t, userRepo.settlements, 1)
	assert.InDelta(t, 4.0, userRepo.settlements[0], 1e-9)
	assert.InDelta(t, -4.0, platformRepo.profit, 1e-9)
}

func TestResolveOnce_LostTakesStake(t *testing.T) {
	match := wonMatch()
	match.Participants[0].Win = false

	telemetry := &fakeTelemetry{lastMatchID: "BR1_101", match: match}
	s, userRepo, betRepo, platformRepo := newTestService(pendingBet(), telemetry)

	require.NoError(t, s.ResolveOnce(context.Background()))

	assert.Equal(t, model.BetLost, betRepo.statuses["bet-1"])
	// Деньги списаны при приёме, на проигрыше выплат нет
	assert.Empty(t, userRepo.adjustments)
	require.Len(t, userRepo.settlements, 1)
	assert.InDelta(t, -4.0, userRepo.settlements[0], 1e-9)
	assert.InDelta(t, 4.0, platformRepo.profit, 1e-9)
}

func TestResolveOnce_ShortMatchVoidsAndRefunds(t *testing.T) {
	match := wonMatch()
	match.GameDuration = 300

	telemetry := &fakeTelemetry{lastMatchID: "BR1_101", match: match}
	s, userRepo, betRepo, platformRepo := newTestService(pendingBet(), telemetry)

	require.NoError(t, s.ResolveOnce(context.Background()))

	assert.Equal(t, model.BetVoid, betRepo.statuses["bet-1"])

	// Возврат ровно по исходным кошелькам, P/L не трогается
	require.Len(t, userRepo.adjustments, 1)
	assert.InDelta(t, 3.0, userRepo.adjustments[0].wallet, 1e-9)
	assert.InDelta(t, 1.0, userRepo.adjustments[0].bonus, 1e-9)
	assert.Empty(t, userRepo.settlements)
	assert.InDelta(t, 0.0, platformRepo.profit, 1e-9)
}

func TestResolveOnce_AbsentPlayerVoids(t *testing.T) {
	match := wonMatch()
	match.Participants = match.Participants[1:]

	telemetry := &fakeTelemetry{lastMatchID: "BR1_101", match: match}
	s, _, betRepo, _ := newTestService(pendingBet(), telemetry)

	require.NoError(t, s.ResolveOnce(context.Background()))
	assert.Equal(t, model.BetVoid, betRepo.statuses["bet-1"])
}

func TestResolveOnce_SecondPassPaysNothing(t *testing.T) {
	telemetry := &fakeTelemetry{lastMatchID: "BR1_101", match: wonMatch()}
	s, userRepo, _, platformRepo := newTestService(pendingBet(), telemetry)

	require.NoError(t, s.ResolveOnce(context.Background()))
	require.NoError(t, s.ResolveOnce(context.Background()))

	// Переход охраняется "только из pending": повторный проход ничего не доплатил
	assert.Len(t, userRepo.adjustments, 1)
	assert.Len(t, userRepo.settlements, 1)
	assert.InDelta(t, -4.0, platformRepo.profit, 1e-9)
}
