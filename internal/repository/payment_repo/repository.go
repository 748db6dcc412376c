package payment_repo

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	withdrawalsTable = "withdrawals"
	depositsTable    = "deposits"
	colUserID        = "user_id"
	colAmount        = "amount"
	colStatus        = "status"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPaymentRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PaymentRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateWithdrawal - заявка на вывод, уходит оператору в статусе processing
func (r *repo) CreateWithdrawal(ctx context.Context, userID int, amount float64) error {
	return r.insert(ctx, withdrawalsTable, userID, amount, "processing")
}

// CreateDeposit - запись о зачисленном депозите
func (r *repo) CreateDeposit(ctx context.Context, userID int, amount float64) error {
	return r.insert(ctx, depositsTable, userID, amount, "paid")
}

func (r *repo) insert(ctx context.Context, table string, userID int, amount float64, status string) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colAmount, colStatus).
		Values(userID, amount, status).
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
