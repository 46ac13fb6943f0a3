package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().String()).Row()
	resp, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	orders := []OrderResponse{resp}
	if err = attachOrderItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}
	return orders[0], nil
}
