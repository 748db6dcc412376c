package user_repo

import (
	"context"
	"errors"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table              = "users"
	colID              = "id"
	colName            = "name"
	colLogin           = "login"
	colPasswordHash    = "password_hash"
	colWallet          = "wallet"
	colBonusWallet     = "bonus_wallet"
	colRolloverTarget  = "rollover_target"
	colTotalWagered    = "total_wagered"
	colTotalDeposited  = "total_deposited"
	colProfitLoss      = "profit_loss"
	colTotalBetsMade   = "total_bets_made"
	colCurrentBetLimit = "current_bet_limit"
	colKYCStatus       = "kyc_status"
	colReferralCode    = "referral_code"
	colIsAdmin         = "is_admin"
	colLastBetPlacedAt = "last_bet_placed_at"

	accountsTable  = "linked_accounts"
	colAccUserID   = "user_id"
	colAccGameType = "game_type"
	colAccPlayerID = "player_id"
	colAccPUUID    = "puuid"
)

var userColumns = []string{
	colID, colName, colLogin, colPasswordHash,
	colWallet, colBonusWallet, colRolloverTarget,
	colTotalWagered, colTotalDeposited, colProfitLoss, colTotalBetsMade,
	colCurrentBetLimit, colKYCStatus, colReferralCode, colIsAdmin, colLastBetPlacedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// conn - пул либо транзакция из контекста, если вызов идёт внутри txManager.Do
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colKYCStatus, colReferralCode).
		Values(user.Name, user.Login, user.Password, user.KYCStatus, user.ReferralCode).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colLogin: login})
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(userColumns...).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.Name, &user.Login, &user.Password,
		&user.Wallet, &user.BonusWallet, &user.RolloverTarget,
		&user.TotalWagered, &user.TotalDeposited, &user.ProfitLoss, &user.TotalBetsMade,
		&user.CurrentBetLimit, &user.KYCStatus, &user.ReferralCode, &user.IsAdmin, &user.LastBetPlacedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AdjustBalances - инкрементное изменение кошельков пользователя.
// Роловер зажимается снизу нулём
func (r *repo) AdjustBalances(ctx context.Context, id int, walletDelta, bonusDelta, rolloverDelta float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colWallet, sq.Expr(colWallet+" + ?", walletDelta)).
		Set(colBonusWallet, sq.Expr(colBonusWallet+" + ?", bonusDelta)).
		Set(colRolloverTarget, sq.Expr("GREATEST("+colRolloverTarget+" + ?, 0)", rolloverDelta)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ConvertBonus - перенос всего бонусного баланса в реальный кошелёк
func (r *repo) ConvertBonus(ctx context.Context, id int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colWallet, sq.Expr(colWallet+" + "+colBonusWallet)).
		Set(colBonusWallet, 0.0).
		Set(colRolloverTarget, 0.0).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// RecordStake - фиксация принятой ставки в накопительных показателях
func (r *repo) RecordStake(ctx context.Context, id int, amount float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalWagered, sq.Expr(colTotalWagered+" + ?", amount)).
		Set(colLastBetPlacedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// RecordSettlement - P/L игрока и счётчик рассчитанных ставок
func (r *repo) RecordSettlement(ctx context.Context, id int, profitDelta float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colProfitLoss, sq.Expr(colProfitLoss+" + ?", profitDelta)).
		Set(colTotalBetsMade, sq.Expr(colTotalBetsMade+" + 1")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// RecordDeposit - зачисление депозита на реальный кошелёк
func (r *repo) RecordDeposit(ctx context.Context, id int, amount float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colWallet, sq.Expr(colWallet+" + ?", amount)).
		Set(colTotalDeposited, sq.Expr(colTotalDeposited+" + ?", amount)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// UpdateBetLimit - актуализация текущего лимита ставки
func (r *repo) UpdateBetLimit(ctx context.Context, id int, limit float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCurrentBetLimit, limit).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// UpdateKYC - смена статуса верификации
func (r *repo) UpdateKYC(ctx context.Context, id int, status string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colKYCStatus, status).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// SetLinkedAccount - привязка игрового аккаунта (перезаписывает прежнюю)
func (r *repo) SetLinkedAccount(ctx context.Context, acct *model.LinkedAccount) error {
	// Формируем запрос
	query := sq.Insert(accountsTable).
		Columns(colAccUserID, colAccGameType, colAccPlayerID, colAccPUUID).
		Values(acct.UserID, acct.GameType, acct.PlayerID, acct.PUUID).
		Suffix("ON CONFLICT (" + colAccUserID + ", " + colAccGameType + ") DO UPDATE SET " +
			colAccPlayerID + " = EXCLUDED." + colAccPlayerID + ", " +
			colAccPUUID + " = EXCLUDED." + colAccPUUID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetLinkedAccount - привязанный аккаунт пользователя для игры
func (r *repo) GetLinkedAccount(ctx context.Context, userID int, gameType string) (*model.LinkedAccount, error) {
	// Формируем запрос
	query := sq.Select(colAccUserID, colAccGameType, colAccPlayerID, colAccPUUID).
		From(accountsTable).
		Where(sq.Eq{colAccUserID: userID, colAccGameType: gameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var acct model.LinkedAccount
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&acct.UserID, &acct.GameType, &acct.PlayerID, &acct.PUUID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &acct, nil
}

// DeleteLinkedAccount - отвязка игрового аккаунта
func (r *repo) DeleteLinkedAccount(ctx context.Context, userID int, gameType string) error {
	// Формируем запрос
	query := sq.Delete(accountsTable).
		Where(sq.Eq{colAccUserID: userID, colAccGameType: gameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
