package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

func (r *Repository) CreateFoodItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error) {
	statement := r.db.QueryBuilder.Insert("food_items").
		Columns("name", "price", "image_url", "description", "created_at").
		Values(item.Name, item.Price, item.ImageURL, item.Description, item.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&item.ID); err != nil {
		return nil, err
	}

	return item, nil
}

func (r *Repository) DeleteFoodItem(ctx context.Context, id int) (int64, error) {
	statement := r.db.QueryBuilder.Delete("food_items").
		Where(sq.Eq{"id": id})

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

func (r *Repository) ListFoodItems(ctx context.Context) ([]*domain.FoodItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "image_url", "description", "created_at").
		From("food_items").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.FoodItem, 0)
	for rows.Next() {
		item := domain.FoodItem{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
			&item.Description,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
