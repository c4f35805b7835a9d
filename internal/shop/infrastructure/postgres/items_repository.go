package postgres

import (
	"context"

	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/digivend/credit-shop/internal/shop/domain"
)

type ItemsRepository struct {
	querier database.Querier
}

func NewItemsRepository(querier database.Querier) *ItemsRepository {
	return &ItemsRepository{
		querier: querier,
	}
}

func (ir *ItemsRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	listItemsSQL := `SELECT id, name, description, price, item_type, content, stock, created_at
		FROM items
		ORDER BY created_at DESC`

	rows, err := ir.querier.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, &domain.StoreError{Msg: "failed to list items", Err: err}
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ItemType,
			&item.Content,
			&item.Stock,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, &domain.StoreError{Msg: "failed to scan item row", Err: err}
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Msg: "failed to iterate item rows", Err: err}
	}

	return items, nil
}

func (ir *ItemsRepository) CreateItem(ctx context.Context, newItem domain.NewItem) (domain.Item, error) {
	creationSQL := `INSERT INTO items (name, description, price, item_type, content, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, item_type, content, stock, created_at`

	var item domain.Item
	row := ir.querier.QueryRow(ctx, creationSQL,
		newItem.Name,
		newItem.Description,
		newItem.Price,
		newItem.ItemType,
		newItem.Content,
		newItem.Stock,
	)
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ItemType,
		&item.Content,
		&item.Stock,
		&item.CreatedAt,
	)
	if err != nil {
		return domain.Item{}, &domain.StoreError{Msg: "failed to create item", Err: err}
	}

	return item, nil
}
