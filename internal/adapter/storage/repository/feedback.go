package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

func (r *Repository) CreateFeedback(ctx context.Context, fb *domain.Feedback) error {
	statement := r.db.QueryBuilder.Insert("feedback").
		Columns("order_id", "rating", "feedback", "user_email", "created_at").
		Values(fb.OrderID, fb.Rating, fb.Feedback, fb.UserEmail, fb.CreatedAt)

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

func (r *Repository) ReadFeedback(ctx context.Context, orderID string) (*domain.Feedback, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "rating", "feedback", "user_email", "created_at").
		From("feedback").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	fb := domain.Feedback{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&fb.OrderID,
		&fb.Rating,
		&fb.Feedback,
		&fb.UserEmail,
		&fb.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &fb, nil
}
