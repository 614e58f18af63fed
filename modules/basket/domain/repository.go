package domain

import "context"

// BasketRepository holds the basket of the single storefront session.
type BasketRepository interface {
	Current(ctx context.Context) (*Basket, error)
	Save(ctx context.Context, basket *Basket) error
}
