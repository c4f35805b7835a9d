package application

import (
	"context"

	"github.com/digivend/credit-shop/internal/shop/domain"
)

type PurchaseCase struct {
	purchaseCoordinator domain.PurchaseCoordinator
}

func NewPurchaseCase(purchaseCoordinator domain.PurchaseCoordinator) *PurchaseCase {
	return &PurchaseCase{
		purchaseCoordinator: purchaseCoordinator,
	}
}

func (pc *PurchaseCase) BuyItem(ctx context.Context, userId, itemId int) (domain.Purchase, error) {
	if itemId <= 0 {
		return domain.Purchase{}, &domain.InvalidArgumentsError{Msg: "item id must be positive"}
	}

	return pc.purchaseCoordinator.Purchase(ctx, userId, itemId)
}
