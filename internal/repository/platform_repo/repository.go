package platform_repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	configTable   = "platform_config"
	colConfigID   = "id"
	colConfigBody = "body"
	// Конфиг платформы - единственный документ
	configDocID = 1

	statsTable = "platform_stats"
	colStatsID = "id"
	colTotalPL = "total_profit_loss"
	statsRowID = 1
)

type repo struct {
	dbc      *pgxpool.Pool
	getter   *trmpgx.CtxGetter
	fallback config.Platform
}

// NewPlatformRepository - репозиторий операторского конфига и сводного P/L.
// fallback возвращается из GetConfig, пока админ не сохранил свой документ
func NewPlatformRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter, fallback config.Platform) repository.PlatformRepository {
	return &repo{
		dbc:      dbc,
		getter:   getter,
		fallback: fallback,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// GetConfig - операторский конфиг. Читается один раз на операцию:
// вызывающий держит снимок и не видит частичных изменений
func (r *repo) GetConfig(ctx context.Context) (config.Platform, error) {
	// Формируем запрос
	query := sq.Select(colConfigBody).
		From(configTable).
		Where(sq.Eq{colConfigID: configDocID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return config.Platform{}, err
	}

	var body []byte
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.fallback, nil
		}
		return config.Platform{}, err
	}

	// Дефолты подставляются под отсутствующие ключи документа
	cfg := r.fallback
	if err := json.Unmarshal(body, &cfg); err != nil {
		return config.Platform{}, err
	}

	return cfg, nil
}

// SetConfig - сохранение конфига целиком (применится со следующей операции)
func (r *repo) SetConfig(ctx context.Context, cfg config.Platform) error {
	body, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(configTable).
		Columns(colConfigID, colConfigBody).
		Values(configDocID, body).
		Suffix("ON CONFLICT (" + colConfigID + ") DO UPDATE SET " +
			colConfigBody + " = EXCLUDED." + colConfigBody).
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

// AddProfit - инкремент сводного P/L платформы (прибыль дома)
func (r *repo) AddProfit(ctx context.Context, delta float64) error {
	// Формируем запрос
	query := sq.Insert(statsTable).
		Columns(colStatsID, colTotalPL).
		Values(statsRowID, delta).
		Suffix("ON CONFLICT (" + colStatsID + ") DO UPDATE SET " +
			colTotalPL + " = " + statsTable + "." + colTotalPL + " + EXCLUDED." + colTotalPL).
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

// GetProfit - текущий сводный P/L платформы
func (r *repo) GetProfit(ctx context.Context) (float64, error) {
	// Формируем запрос
	query := sq.Select(colTotalPL).
		From(statsTable).
		Where(sq.Eq{colStatsID: statsRowID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return total, nil
}
