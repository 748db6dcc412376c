package repository

import (
	"context"
	"time"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// AdjustBalances - инкрементное изменение кошельков. Роловер не
	// опускается ниже нуля. Вызывается только внутри транзакции
	AdjustBalances(ctx context.Context, id int, walletDelta, bonusDelta, rolloverDelta float64) error
	// ConvertBonus - перенос всего бонусного баланса в реальный со сбросом роловера
	ConvertBonus(ctx context.Context, id int) error
	// RecordStake - накопительные показатели при приёме ставки
	RecordStake(ctx context.Context, id int, amount float64) error
	// RecordSettlement - P/L и счётчик рассчитанных ставок
	RecordSettlement(ctx context.Context, id int, profitDelta float64) error
	RecordDeposit(ctx context.Context, id int, amount float64) error
	UpdateBetLimit(ctx context.Context, id int, limit float64) error
	UpdateKYC(ctx context.Context, id int, status string) error

	SetLinkedAccount(ctx context.Context, acct *model.LinkedAccount) error
	GetLinkedAccount(ctx context.Context, userID int, gameType string) (*model.LinkedAccount, error)
	DeleteLinkedAccount(ctx context.Context, userID int, gameType string) error
}

type BetRepository interface {
	CreateBet(ctx context.Context, bet *model.Bet) error
	ListPending(ctx context.Context) ([]model.Bet, error)
	ListByUser(ctx context.Context, userID int, statuses []string) ([]model.Bet, error)
	// MarkResolved - перевод ставки в терминальный статус с охраной
	// "только из pending". Возвращает false, если переход уже сделан
	MarkResolved(ctx context.Context, id string, status string) (bool, error)
}

type PlatformRepository interface {
	// GetConfig - операторский конфиг из БД; при пустом документе
	// возвращается фолбэк, заданный при создании репозитория
	GetConfig(ctx context.Context) (config.Platform, error)
	SetConfig(ctx context.Context, cfg config.Platform) error

	AddProfit(ctx context.Context, delta float64) error
	GetProfit(ctx context.Context) (float64, error)
}

type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	HasUsage(ctx context.Context, userID int, code string) (bool, error)
	RegisterUsage(ctx context.Context, userID int, code string, amount float64) error
	IncrementUses(ctx context.Context, code string) error
}

type PaymentRepository interface {
	CreateWithdrawal(ctx context.Context, userID int, amount float64) error
	CreateDeposit(ctx context.Context, userID int, amount float64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// StatsCacheRepository - кеш статистики игроков с TTL.
// Get на промахе возвращает (nil, nil)
type StatsCacheRepository interface {
	Get(ctx context.Context, puuid string) (*model.PlayerStats, error)
	Set(ctx context.Context, puuid string, stats model.PlayerStats, ttl time.Duration) error
}
