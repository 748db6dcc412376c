package coupon_repo

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
	table         = "coupons"
	colID         = "id"
	colCode       = "code"
	colAmount     = "amount"
	colType       = "type"
	colMinDeposit = "min_deposit_required"
	colMaxUses    = "max_uses"
	colCurUses    = "current_uses"
	colActive     = "active"

	usagesTable   = "coupon_usages"
	colUserID     = "user_id"
	colUsageCode  = "code"
	colUsedAmount = "amount"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCouponRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.CouponRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// GetByCode - купон по коду, nil если не найден
func (r *repo) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	// Формируем запрос
	query := sq.Select(colID, colCode, colAmount, colType, colMinDeposit, colMaxUses, colCurUses, colActive).
		From(table).
		Where(sq.Eq{colCode: code}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Coupon
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&c.ID, &c.Code, &c.Amount, &c.Type, &c.MinDepositRequired,
		&c.MaxUses, &c.CurrentUses, &c.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// HasUsage - активировал ли пользователь этот код раньше
func (r *repo) HasUsage(ctx context.Context, userID int, code string) (bool, error) {
	// Формируем запрос
	query := sq.Select("1").
		From(usagesTable).
		Where(sq.Eq{colUserID: userID, colUsageCode: code}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// RegisterUsage - фиксация активации кода пользователем
func (r *repo) RegisterUsage(ctx context.Context, userID int, code string, amount float64) error {
	// Формируем запрос
	query := sq.Insert(usagesTable).
		Columns(colUserID, colUsageCode, colUsedAmount).
		Values(userID, code, amount).
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

// IncrementUses - счётчик активаций купона
func (r *repo) IncrementUses(ctx context.Context, code string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCurUses, sq.Expr(colCurUses+" + 1")).
		Where(sq.Eq{colCode: code}).
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
