package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// MarketplaceRepository encapsulates listing persistence.
type MarketplaceRepository interface {
	Create(ctx context.Context, item *domain.MarketplaceItem) error
	Update(ctx context.Context, item *domain.MarketplaceItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.MarketplaceItem, error)
	ListAvailable(ctx context.Context) ([]domain.MarketplaceItem, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.MarketplaceItem, error)
}

type marketplaceRepository struct {
	pool *pgxpool.Pool
}

// NewMarketplaceRepository instantiates the repository.
func NewMarketplaceRepository(pool *pgxpool.Pool) MarketplaceRepository {
	return &marketplaceRepository{pool: pool}
}

const itemColumns = `
        m.id, m.title, m.description, m.price, m.category, m.condition,
        m.image_url, m.seller_id, m.status, m.created_at, m.updated_at,
        r.id, r.name, r.login_id`

func (r *marketplaceRepository) Create(ctx context.Context, item *domain.MarketplaceItem) error {
	const query = `
        INSERT INTO marketplace_items (title, description, price, category, condition, image_url, seller_id, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Title,
		item.Description,
		item.Price,
		item.Category,
		item.Condition,
		item.ImageURL,
		item.SellerID,
		item.Status,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *marketplaceRepository) Update(ctx context.Context, item *domain.MarketplaceItem) error {
	const query = `
        UPDATE marketplace_items SET title=$1, description=$2, price=$3, category=$4,
            condition=$5, image_url=$6, status=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		item.Title,
		item.Description,
		item.Price,
		item.Category,
		item.Condition,
		item.ImageURL,
		item.Status,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *marketplaceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM marketplace_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *marketplaceRepository) GetByID(ctx context.Context, id string) (*domain.MarketplaceItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM marketplace_items m JOIN residents r ON r.id = m.seller_id
        WHERE m.id=$1`

	var item domain.MarketplaceItem
	if err := scanItem(r.pool.QueryRow(ctx, query, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *marketplaceRepository) ListAvailable(ctx context.Context) ([]domain.MarketplaceItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM marketplace_items m JOIN residents r ON r.id = m.seller_id
        WHERE m.status='Available'
        ORDER BY m.created_at DESC`
	return r.list(ctx, query)
}

func (r *marketplaceRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.MarketplaceItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM marketplace_items m JOIN residents r ON r.id = m.seller_id
        WHERE m.seller_id=$1
        ORDER BY m.created_at DESC`
	return r.list(ctx, query, sellerID)
}

func (r *marketplaceRepository) list(ctx context.Context, query string, args ...any) ([]domain.MarketplaceItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MarketplaceItem
	for rows.Next() {
		var item domain.MarketplaceItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func scanItem(row pgx.Row, item *domain.MarketplaceItem) error {
	var ref domain.ResidentRef
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Condition,
		&item.ImageURL,
		&item.SellerID,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.LoginID,
	); err != nil {
		return err
	}
	item.Seller = &ref
	return nil
}
