package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dcastilloq/reservation-service/internal/errs"
	"github.com/dcastilloq/reservation-service/internal/model"
)

type Repository interface {
	ExistsByDate(ctx context.Context, date model.Date) (bool, error)
	FindByDate(ctx context.Context, date model.Date) (model.Reservation, error)
	FindByHolderName(ctx context.Context, name string) ([]model.Reservation, error)
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByID(ctx context.Context, id int64) (model.Reservation, error)
	Save(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	Delete(ctx context.Context, rsv model.Reservation) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	reservationTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var reservationColumns = []string{
	"id", "table_number", "holder_name", "is_active", "reservation_date", "party_size", "services",
}

func (r *repository) ExistsByDate(ctx context.Context, date model.Date) (bool, error) {
	q, args, err := qb.Select("1").
		From(reservationTableName).
		Where(sq.Eq{"reservation_date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}
	var one int
	if err := r.db.GetContext(ctx, &one, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) FindByDate(ctx context.Context, date model.Date) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"reservation_date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) FindByHolderName(ctx context.Context, name string) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"holder_name": name}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindAll(ctx context.Context) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

// Save inserts when the id is unset, otherwise replaces the row wholesale.
// A unique violation on the date index reports the conflict instead of the
// raw driver error, so a lost check-then-save race still surfaces cleanly.
func (r *repository) Save(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	if rsv.ID == 0 {
		q, args, err := qb.Insert(reservationTableName).
			Columns("table_number", "holder_name", "is_active", "reservation_date", "party_size", "services").
			Values(rsv.TableNumber, rsv.HolderName, rsv.IsActive, rsv.Date, rsv.PartySize, rsv.Services).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return model.Reservation{}, err
		}
		if err := r.db.GetContext(ctx, &rsv.ID, q, args...); err != nil {
			r.log.Error("Save insert", zap.String("q", q), zap.Any("args", args))
			return model.Reservation{}, mapSaveErr(err)
		}
		return rsv, nil
	}

	q, args, err := qb.Update(reservationTableName).
		Set("table_number", rsv.TableNumber).
		Set("holder_name", rsv.HolderName).
		Set("is_active", rsv.IsActive).
		Set("reservation_date", rsv.Date).
		Set("party_size", rsv.PartySize).
		Set("services", rsv.Services).
		Where(sq.Eq{"id": rsv.ID}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("Save update", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, mapSaveErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Reservation{}, err
	}
	if n == 0 {
		return model.Reservation{}, errs.ErrNotFound
	}
	return rsv, nil
}

func (r *repository) Delete(ctx context.Context, rsv model.Reservation) error {
	q, args, err := qb.Delete(reservationTableName).
		Where(sq.Eq{"id": rsv.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func mapSaveErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrDateAlreadyReserved
	}
	return err
}
