package application

import (
	"context"

	"github.com/digivend/credit-shop/internal/shop/domain"
)

type CatalogCase struct {
	itemsRepository domain.ItemsRepository
}

func NewCatalogCase(itemsRepository domain.ItemsRepository) *CatalogCase {
	return &CatalogCase{
		itemsRepository: itemsRepository,
	}
}

func (cc *CatalogCase) ListItems(ctx context.Context) ([]domain.Item, error) {
	return cc.itemsRepository.ListItems(ctx)
}

func (cc *CatalogCase) CreateItem(ctx context.Context, newItem domain.NewItem) (domain.Item, error) {
	if newItem.Name == "" {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item name must not be empty"}
	}

	if newItem.ItemType == "" {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item type must not be empty"}
	}

	if newItem.Price < 0 {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item price must not be negative"}
	}

	return cc.itemsRepository.CreateItem(ctx, newItem)
}
