package http

import (
	"context"

	authdomain "github.com/digivend/credit-shop/internal/auth/domain"
	shopdomain "github.com/digivend/credit-shop/internal/shop/domain"
)

//go:generate mockgen -destination=../../../gen/mocks/server/mock_services.go -package=mocks github.com/digivend/credit-shop/internal/server/http AuthCase,CatalogCase,PurchaseCase,AccountCase

type AuthCase interface {
	Register(ctx context.Context, username, password string) (authdomain.UserRecord, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type CatalogCase interface {
	ListItems(ctx context.Context) ([]shopdomain.Item, error)
	CreateItem(ctx context.Context, newItem shopdomain.NewItem) (shopdomain.Item, error)
}

type PurchaseCase interface {
	BuyItem(ctx context.Context, userId, itemId int) (shopdomain.Purchase, error)
}

type AccountCase interface {
	GetAccount(ctx context.Context, userId int) (shopdomain.TotalAccountInfo, error)
}
