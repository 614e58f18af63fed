// Package queries contains read use cases for the orders module.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// OrderDTO is a read model for order data.
type OrderDTO struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Payment   string      `json:"payment"`
	Address   string      `json:"address"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Items     []string    `json:"items"`
	Total     types.Money `json:"total"`
	TotalText string      `json:"total_text"`
	CreatedAt time.Time   `json:"created_at"`
	PlacedAt  time.Time   `json:"placed_at"`
}

// GetOrderQuery retrieves an order by ID.
type GetOrderQuery struct {
	OrderID string
}

type GetOrderHandler struct {
	repo domain.OrderRepository
}

func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderDTO, error) {
	orderID, err := types.ParseOrderID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID: %w", err)
	}

	order, err := h.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return toOrderDTO(order), nil
}

func toOrderDTO(order *domain.Order) *OrderDTO {
	contacts := order.Contacts()
	return &OrderDTO{
		ID:        order.ID().String(),
		Status:    order.Status().String(),
		Payment:   contacts.Payment,
		Address:   contacts.Address,
		Email:     contacts.Email,
		Phone:     contacts.Phone,
		Items:     order.Items(),
		Total:     order.Total(),
		TotalText: order.Total().String(),
		CreatedAt: order.CreatedAt(),
		PlacedAt:  order.PlacedAt(),
	}
}
