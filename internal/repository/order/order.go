package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"mozcommerce/internal/entities"
	"mozcommerce/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, buyer_phone, buyer_verified, buyer_created_at,
		shipping_address, shipping_city, payment_method, status,
		subtotal, total, commission, seller_amount, delivery_confirmed,
		tracking_code, payment_reference, payment_transaction_id, payment_amount, payment_confirmed_at,
		created_at, paid_at, delivered_at, payment_released_at, payment_initiated_at, flagged_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderDB, itemsDB := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, buyer_id, buyer_phone, buyer_verified, buyer_created_at,
			shipping_address, shipping_city, payment_method, status,
			subtotal, total, commission, seller_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderDB.ID,
		orderDB.BuyerID,
		orderDB.BuyerPhone,
		orderDB.BuyerVerified,
		orderDB.BuyerCreatedAt,
		orderDB.ShippingAddress,
		orderDB.ShippingCity,
		orderDB.PaymentMethod,
		orderDB.Status,
		orderDB.Subtotal,
		orderDB.Total,
		orderDB.Commission,
		orderDB.SellerAmount,
		orderDB.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "seller_id", "seller_phone", "unit_price", "quantity")
	for _, item := range itemsDB {
		builder = builder.Values(
			item.OrderID,
			item.ProductID,
			item.SellerID,
			item.SellerPhone,
			item.UnitPrice,
			item.Quantity,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(orderDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, itemsDB[orderDB.ID]), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(orderDB.scanTargets()...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	orderIDs := make([]string, 0, len(orderModels))
	for _, orderDB := range orderModels {
		orderIDs = append(orderIDs, orderDB.ID)
	}

	itemsDB, err := r.getItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	orderEntities := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orderEntities = append(orderEntities, *ToDomain(&orderModels[i], itemsDB[orderModels[i].ID]))
	}

	return orderEntities, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", string(*orderModify.Status))
	}
	if orderModify.Commission != nil {
		builder = builder.Set("commission", *orderModify.Commission)
	}
	if orderModify.SellerAmount != nil {
		builder = builder.Set("seller_amount", *orderModify.SellerAmount)
	}
	if orderModify.DeliveryConfirmed != nil {
		builder = builder.Set("delivery_confirmed", *orderModify.DeliveryConfirmed)
	}
	if orderModify.TrackingCode != nil {
		builder = builder.Set("tracking_code", *orderModify.TrackingCode)
	}
	if orderModify.Payment != nil {
		builder = builder.
			Set("payment_reference", orderModify.Payment.Reference).
			Set("payment_transaction_id", orderModify.Payment.TransactionID).
			Set("payment_amount", orderModify.Payment.Amount).
			Set("payment_confirmed_at", orderModify.Payment.ConfirmedAt)
	}
	if orderModify.PaidAt != nil {
		builder = builder.Set("paid_at", *orderModify.PaidAt)
	}
	if orderModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *orderModify.DeliveredAt)
	}
	if orderModify.PaymentReleasedAt != nil {
		builder = builder.Set("payment_released_at", *orderModify.PaymentReleasedAt)
	}
	if orderModify.PaymentInitiatedAt != nil {
		builder = builder.Set("payment_initiated_at", *orderModify.PaymentInitiatedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, itemsDB[orderDB.ID]), nil
}

func (r *Repository) FlagStalePending(ctx context.Context, initiatedBefore time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET flagged_at = NOW(),
		    updated_at = NOW()
		WHERE status = 'pending'
		  AND payment_initiated_at IS NOT NULL
		  AND payment_initiated_at < $1
		  AND flagged_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, initiatedBefore)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository flag stale pending error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]ItemDB, error) {
	itemsByOrder := make(map[string][]ItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query := `
		SELECT order_id, product_id, seller_id, seller_phone, unit_price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemDB ItemDB
		err := rows.Scan(
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.SellerID,
			&itemDB.SellerPhone,
			&itemDB.UnitPrice,
			&itemDB.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemsByOrder[itemDB.OrderID] = append(itemsByOrder[itemDB.OrderID], itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemsByOrder, nil
}
