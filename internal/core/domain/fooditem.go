package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// FoodItem is a catalog entry managed by privileged users.
type FoodItem struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	ImageURL    string
	Description string
	CreatedAt   time.Time
}
