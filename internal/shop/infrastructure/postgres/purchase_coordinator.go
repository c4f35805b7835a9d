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

type PurchaseCoordinator struct {
	queryTxBeginner database.QueryTxBeginner
	logger          logging.Logger
}

func NewPurchaseCoordinator(queryTxBeginner database.QueryTxBeginner, logger logging.Logger) *PurchaseCoordinator {
	return &PurchaseCoordinator{
		queryTxBeginner: queryTxBeginner,
		logger:          logger,
	}
}

// Purchase executes the whole buy operation inside a single transaction. The
// FOR UPDATE lock on the buyer's row serializes concurrent purchases by the
// same user; the deferred rollback guarantees no failure path leaves the
// transaction open or the balance half-updated.
func (pc *PurchaseCoordinator) Purchase(ctx context.Context, userId, itemId int) (domain.Purchase, error) {
	tx, err := pc.queryTxBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.Purchase{}, &domain.StoreError{Msg: "failed to begin purchase transaction", Err: err}
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			pc.logger.Error("failed to rollback purchase transaction", "error", err)
		}
	}()

	credits, err := LockUserCredits(ctx, tx, userId)
	if err != nil {
		return domain.Purchase{}, err
	}

	item, err := GetItemSnapshot(ctx, tx, itemId)
	if err != nil {
		return domain.Purchase{}, err
	}

	if credits < item.Price {
		return domain.Purchase{}, &domain.InsufficientCreditsError{
			Msg: fmt.Sprintf("user %d has %d credits, item %d costs %d", userId, credits, itemId, item.Price),
		}
	}

	purchase, err := DeductAndRecord(ctx, tx, userId, item)
	if err != nil {
		return domain.Purchase{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return domain.Purchase{}, &domain.StoreError{Msg: "failed to commit purchase transaction", Err: err}
	}

	return purchase, nil
}

// LockUserCredits takes an exclusive lock on the user's row; the lock is held
// until the surrounding transaction ends.
func LockUserCredits(ctx context.Context, querier database.Querier, userId int) (int, error) {
	lockUserSQL := `SELECT credits FROM users WHERE id = $1 FOR UPDATE`

	var credits int
	err := querier.QueryRow(ctx, lockUserSQL, userId).Scan(&credits)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userId)}
		}

		return 0, &domain.StoreError{Msg: "failed to lock user row", Err: err}
	}

	return credits, nil
}

// GetItemSnapshot reads the item attributes that get denormalized into the
// purchase record. Items are treated as immutable within the purchase flow,
// so no lock is taken.
func GetItemSnapshot(ctx context.Context, querier database.Querier, itemId int) (domain.Item, error) {
	findItemSQL := `SELECT id, name, price, content FROM items WHERE id = $1`

	var item domain.Item
	err := querier.QueryRow(ctx, findItemSQL, itemId).Scan(&item.ID, &item.Name, &item.Price, &item.Content)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", itemId)}
		}

		return domain.Item{}, &domain.StoreError{Msg: "failed to find item", Err: err}
	}

	return item, nil
}

// DeductAndRecord debits the already-locked balance and inserts the purchase
// snapshot. The returned record is scanned from the insert, so id and
// timestamp come from the committed row, not from a local guess.
func DeductAndRecord(ctx context.Context, executor database.QueryExecuter, userId int, item domain.Item) (domain.Purchase, error) {
	updateCreditsSQL := `UPDATE users SET credits = credits - $1 WHERE id = $2`
	_, err := executor.Exec(ctx, updateCreditsSQL, item.Price, userId)
	if err != nil {
		return domain.Purchase{}, &domain.StoreError{Msg: "failed to deduct user credits", Err: err}
	}

	insertPurchaseSQL := `INSERT INTO purchases (user_id, item_id, item_name, content_delivered, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, item_id, item_name, content_delivered, price, created_at`

	var purchase domain.Purchase
	err = executor.QueryRow(ctx, insertPurchaseSQL, userId, item.ID, item.Name, item.Content, item.Price).Scan(
		&purchase.ID,
		&purchase.UserID,
		&purchase.ItemID,
		&purchase.ItemName,
		&purchase.ContentDelivered,
		&purchase.Price,
		&purchase.CreatedAt,
	)
	if err != nil {
		return domain.Purchase{}, &domain.StoreError{Msg: "failed to insert purchase record", Err: err}
	}

	return purchase, nil
}
