package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../../gen/mocks/shop/mock_shop.go -package=mocks github.com/digivend/credit-shop/internal/shop/domain ItemsRepository,PurchaseCoordinator,AccountFetcher

// UnlimitedStock marks an item whose stock counter is never decremented.
const UnlimitedStock = -1

type ItemsRepository interface {
	ListItems(ctx context.Context) ([]Item, error)
	CreateItem(ctx context.Context, newItem NewItem) (Item, error)
}

type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       int       `json:"price"`
	ItemType    string    `json:"type"`
	Content     *string   `json:"content,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewItem struct {
	Name        string
	Description *string
	Price       int
	ItemType    string
	Content     *string
	Stock       int
}
