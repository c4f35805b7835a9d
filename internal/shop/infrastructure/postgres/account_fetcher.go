package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/digivend/credit-shop/internal/pkg/logging"
	"github.com/digivend/credit-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type AccountFetcher struct {
	querier database.Querier
	logger  logging.Logger
}

func NewAccountFetcher(querier database.Querier, logger logging.Logger) *AccountFetcher {
	return &AccountFetcher{
		querier: querier,
		logger:  logger,
	}
}

func (af *AccountFetcher) FetchAccountInfo(ctx context.Context, userId int) (domain.AccountInfo, error) {
	sql := `SELECT id, username, role, credits FROM users WHERE id = $1`

	var accountInfo domain.AccountInfo
	err := af.querier.QueryRow(ctx, sql, userId).Scan(
		&accountInfo.ID,
		&accountInfo.Username,
		&accountInfo.Role,
		&accountInfo.Credits,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AccountInfo{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userId)}
		}

		return domain.AccountInfo{}, &domain.StoreError{Msg: "failed to fetch account info", Err: err}
	}

	return accountInfo, nil
}

func (af *AccountFetcher) FetchUserPurchases(ctx context.Context, userId int) ([]domain.Purchase, error) {
	sql := `SELECT id, user_id, item_id, item_name, content_delivered, price, created_at
			FROM purchases
			WHERE user_id = $1
			ORDER BY created_at DESC`

	rows, err := af.querier.Query(ctx, sql, userId)
	if err != nil {
		return nil, &domain.StoreError{Msg: "failed to fetch user purchases", Err: err}
	}
	defer rows.Close()

	purchases := make([]domain.Purchase, 0)
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(
			&purchase.ID,
			&purchase.UserID,
			&purchase.ItemID,
			&purchase.ItemName,
			&purchase.ContentDelivered,
			&purchase.Price,
			&purchase.CreatedAt,
		)
		if err != nil {
			return nil, &domain.StoreError{Msg: "failed to scan purchase row", Err: err}
		}

		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Msg: "failed to iterate purchase rows", Err: err}
	}

	return purchases, nil
}
