package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

func (r *Repository) UpsertOTP(ctx context.Context, otp *domain.OTPCode) error {
	statement := r.db.QueryBuilder.Insert("otp_codes").
		Columns("phone_number", "code", "expires_at").
		Values(otp.PhoneNumber, otp.Code, otp.ExpiresAt).
		Suffix("ON CONFLICT (phone_number) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ReadOTP(ctx context.Context, phoneNumber string) (*domain.OTPCode, error) {
	statement := r.db.QueryBuilder.
		Select("phone_number", "code", "expires_at").
		From("otp_codes").
		Where(sq.Eq{"phone_number": phoneNumber})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	otp := domain.OTPCode{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&otp.PhoneNumber, &otp.Code, &otp.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &otp, nil
}

func (r *Repository) DeleteOTP(ctx context.Context, phoneNumber string) error {
	statement := r.db.QueryBuilder.Delete("otp_codes").
		Where(sq.Eq{"phone_number": phoneNumber})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) CreateResetToken(ctx context.Context, token *domain.PasswordResetToken) error {
	statement := r.db.QueryBuilder.Insert("password_reset_tokens").
		Columns("email", "token", "expires_at").
		Values(token.Email, token.Token, token.ExpiresAt)

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

func (r *Repository) ReadResetToken(ctx context.Context, email string, token string) (*domain.PasswordResetToken, error) {
	statement := r.db.QueryBuilder.
		Select("email", "token", "expires_at").
		From("password_reset_tokens").
		Where(sq.Eq{"email": email, "token": token})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	reset := domain.PasswordResetToken{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&reset.Email, &reset.Token, &reset.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &reset, nil
}

func (r *Repository) DeleteResetToken(ctx context.Context, email string, token string) error {
	statement := r.db.QueryBuilder.Delete("password_reset_tokens").
		Where(sq.Eq{"email": email, "token": token})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}
