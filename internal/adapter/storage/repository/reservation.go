package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

func (r *Repository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	statement := r.db.QueryBuilder.Insert("reservations").
		Columns("table_number", "user_name", "phone_number").
		Values(res.TableNumber, res.UserName, res.PhoneNumber)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflictingData
		}
		return err
	}

	return nil
}

func (r *Repository) DeleteReservation(ctx context.Context, tableNumber int) (int64, error) {
	statement := r.db.QueryBuilder.Delete("reservations").
		Where(sq.Eq{"table_number": tableNumber})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	cmd, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}

func (r *Repository) ListReservations(ctx context.Context) ([]*domain.Reservation, error) {
	statement := r.db.QueryBuilder.
		Select("table_number", "user_name", "phone_number").
		From("reservations").
		OrderBy("table_number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Reservation, 0)
	for rows.Next() {
		res := domain.Reservation{}
		if err := rows.Scan(&res.TableNumber, &res.UserName, &res.PhoneNumber); err != nil {
			return nil, err
		}
		list = append(list, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
