package repository

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

const orderColumns = "order_id, user_email, items, amount, phone_number, status, created_at"

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns("order_id", "user_email", "items", "amount", "phone_number", "status", "created_at").
		Values(order.OrderID, order.UserEmail, items, order.Amount, order.PhoneNumber, order.Status, order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"order_id": orderID})

	return r.readOneOrder(ctx, statement)
}

func (r *Repository) ReadUserOrder(ctx context.Context, orderID string, userEmail string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"order_id": orderID, "user_email": userEmail})

	return r.readOneOrder(ctx, statement)
}

func (r *Repository) readOneOrder(ctx context.Context, statement sq.SelectBuilder) (*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	var items []byte

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.OrderID,
		&order.UserEmail,
		&items,
		&order.Amount,
		&order.PhoneNumber,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}

	return &order, nil
}

// updateOrderStatusStatement guards the status transition in the
// statement itself: equal statuses and terminal local statuses match
// no rows, so duplicate webhooks and stale out-of-order deliveries
// degrade to no-ops.
func updateOrderStatusStatement(qb *sq.StatementBuilderType, orderID string, status domain.OrderStatus) sq.UpdateBuilder {
	return qb.Update("orders").
		Set("status", status).
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"status": status}).
		Where(sq.NotEq{"status": []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusFailed}})
}

// UpdateOrderStatus is a single conditional UPDATE, no
// read-modify-write window.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (int64, error) {
	statement := updateOrderStatusStatement(r.db.QueryBuilder, orderID, status)

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

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		var items []byte
		err := rows.Scan(
			&order.OrderID,
			&order.UserEmail,
			&items,
			&order.Amount,
			&order.PhoneNumber,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
