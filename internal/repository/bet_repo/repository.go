package bet_repo

import (
	"context"
	"encoding/json"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "bets"
	colID          = "id"
	colUserID      = "user_id"
	colPUUID       = "puuid"
	colGameType    = "game_type"
	colAmount      = "amount"
	colTotalOdd    = "total_odd"
	colPotential   = "potential_winnings"
	colItems       = "items"
	colSplitReal   = "split_real"
	colSplitBonus  = "split_bonus"
	colStatus      = "status"
	colLastMatchID = "last_match_id"
	colCreatedAt   = "created_at"
	colResolvedAt  = "resolved_at"
)

var betColumns = []string{
	colID, colUserID, colPUUID, colGameType,
	colAmount, colTotalOdd, colPotential, colItems,
	colSplitReal, colSplitBonus, colStatus, colLastMatchID,
	colCreatedAt, colResolvedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateBet - вставка принятой ставки в статусе pending
func (r *repo) CreateBet(ctx context.Context, bet *model.Bet) error {
	items, err := json.Marshal(bet.Items)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colPUUID, colGameType,
			colAmount, colTotalOdd, colPotential, colItems,
			colSplitReal, colSplitBonus, colStatus, colLastMatchID).
		Values(bet.ID, bet.UserID, bet.PUUID, bet.GameType,
			bet.Amount, bet.TotalOdd, bet.PotentialWinnings, items,
			bet.Split.Real, bet.Split.Bonus, bet.Status, bet.LastMatchID).
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

// ListPending - все нерасчитанные ставки для фонового расчёта
func (r *repo) ListPending(ctx context.Context) ([]model.Bet, error) {
	return r.list(ctx, sq.Eq{colStatus: model.BetPending})
}

// ListByUser - ставки пользователя в указанных статусах
func (r *repo) ListByUser(ctx context.Context, userID int, statuses []string) ([]model.Bet, error) {
	return r.list(ctx, sq.Eq{colUserID: userID, colStatus: statuses})
}

func (r *repo) list(ctx context.Context, where sq.Eq) ([]model.Bet, error) {
	// Формируем запрос
	query := sq.Select(betColumns...).
		From(table).
		Where(where).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		bets = append(bets, *bet)
	}

	return bets, rows.Err()
}

// MarkResolved - перевод ставки в терминальный статус.
// Охрана WHERE status = 'pending' делает повторную доставку расчёта
// безопасной: второй вызов не затронет ни одной строки
func (r *repo) MarkResolved(ctx context.Context, id string, status string) (bool, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, status).
		Set(colResolvedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id, colStatus: model.BetPending}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func scanBet(row pgx.Row) (*model.Bet, error) {
	var bet model.Bet
	var items []byte
	err := row.Scan(
		&bet.ID, &bet.UserID, &bet.PUUID, &bet.GameType,
		&bet.Amount, &bet.TotalOdd, &bet.PotentialWinnings, &items,
		&bet.Split.Real, &bet.Split.Bonus, &bet.Status, &bet.LastMatchID,
		&bet.CreatedAt, &bet.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &bet.Items); err != nil {
		return nil, err
	}

	return &bet, nil
}
