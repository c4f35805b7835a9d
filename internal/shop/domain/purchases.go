package domain

import (
	"context"
	"time"
)

// PurchaseCoordinator runs the whole buy operation as one atomic unit against
// the store: lock the buyer's credits row, check affordability, deduct and
// record the purchase. Implementations must never leave a transaction open.
type PurchaseCoordinator interface {
	Purchase(ctx context.Context, userId, itemId int) (Purchase, error)
}

// Purchase is an insert-only record. Item name, price and content are
// snapshots taken at purchase time, so the record stays accurate even if the
// item is changed later.
type Purchase struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	ItemID           int       `json:"item_id"`
	ItemName         string    `json:"item_name"`
	ContentDelivered *string   `json:"content_delivered"`
	Price            int       `json:"price"`
	CreatedAt        time.Time `json:"created_at"`
}

type AccountFetcher interface {
	FetchAccountInfo(ctx context.Context, userId int) (AccountInfo, error)
	FetchUserPurchases(ctx context.Context, userId int) ([]Purchase, error)
}

type AccountInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Credits  int    `json:"credits"`
}

type TotalAccountInfo struct {
	AccountInfo
	Purchases []Purchase `json:"purchases"`
}
