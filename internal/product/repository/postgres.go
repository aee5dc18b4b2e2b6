package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

var _ product.Repository = (*PGRepository)(nil)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx product.TxRepository) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// No-op after a successful commit.
	defer tx.Rollback()

	if err := fn(ctx, &txRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const listSelect = `
        SELECT p.id, p.title, p.description, p.shipping_fee, p.featured,
               p.created_at, p.updated_at,
               c.id AS category_id, c.name AS category_name,
               pv.price, pv.offer_price, pv.stock,
               pc.primary_image_id
        FROM products p
        LEFT JOIN product_variants pv ON pv.id = p.primary_variant_id
        LEFT JOIN product_colors pc ON pc.id = pv.color_id
        LEFT JOIN categories c ON c.id = p.category_id`

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductSummaryRow, int, error) {
	whereClause, args := productPredicate(f).where()

	var count int
	if err := r.getNamed(ctx, &count, "SELECT count(*) FROM products p"+whereClause, args); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		return []model.ProductSummaryRow{}, 0, nil
	}

	args["limit"] = f.Limit
	args["offset"] = f.Offset()
	query := listSelect + whereClause + " ORDER BY " + orderBy(f.SortBy) + " LIMIT :limit OFFSET :offset"

	products := []model.ProductSummaryRow{}
	if err := r.selectNamed(ctx, &products, query, args); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, count, nil
}

func (r *PGRepository) FindImagesByProductIDs(ctx context.Context, productIDs []int64) ([]model.ProductImage, error) {
	if len(productIDs) == 0 {
		return []model.ProductImage{}, nil
	}

	query, args, err := sqlx.In(`
        SELECT pc.product_id, i.id AS image_id, i.url
        FROM product_color_images i
        JOIN product_colors pc ON pc.id = i.color_id
        WHERE pc.product_id IN (?)
        ORDER BY pc.product_id, pc.id, i.id
    `, productIDs)
	if err != nil {
		return nil, err
	}

	images := []model.ProductImage{}
	err = r.DB.SelectContext(ctx, &images, r.DB.Rebind(query), args...)
	return images, err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.ProductDetailRow, error) {
	var row model.ProductDetailRow
	query := `
        SELECT p.id, p.title, p.description, p.category_id, p.featured, p.shipping_fee,
               p.deleted, p.primary_variant_id, p.product_details, p.created_at, p.updated_at,
               c.id AS joined_category_id, c.name AS category_name
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = $1 AND p.deleted = false
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *PGRepository) FindColorsByProductID(ctx context.Context, productID int64) ([]model.Color, error) {
	colors := []model.Color{}
	query := `
        SELECT id, product_id, name, hex_code, primary_image_id, created_at
        FROM product_colors
        WHERE product_id = $1
        ORDER BY id
    `
	err := r.DB.SelectContext(ctx, &colors, query, productID)
	return colors, err
}

func (r *PGRepository) FindImagesByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Image, error) {
	if len(colorIDs) == 0 {
		return []model.Image{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, color_id, url FROM product_color_images WHERE color_id IN (?) ORDER BY id`, colorIDs)
	if err != nil {
		return nil, err
	}

	images := []model.Image{}
	err = r.DB.SelectContext(ctx, &images, r.DB.Rebind(query), args...)
	return images, err
}

func (r *PGRepository) FindVariantsByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Variant, error) {
	if len(colorIDs) == 0 {
		return []model.Variant{}, nil
	}

	query, args, err := sqlx.In(`
        SELECT id, product_id, color_id, size, price, offer_price, stock
        FROM product_variants
        WHERE color_id IN (?)
        ORDER BY id
    `, colorIDs)
	if err != nil {
		return nil, err
	}

	variants := []model.Variant{}
	err = r.DB.SelectContext(ctx, &variants, r.DB.Rebind(query), args...)
	return variants, err
}

func (r *PGRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET deleted = true, updated_at = NOW() WHERE id = $1 AND deleted = false`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// getNamed and selectNamed expand named args and IN lists, then rebind to
// the driver's placeholder style.
func (r *PGRepository) getNamed(ctx context.Context, dest interface{}, query string, args map[string]interface{}) error {
	q, a, err := r.expand(query, args)
	if err != nil {
		return err
	}
	return r.DB.GetContext(ctx, dest, q, a...)
}

func (r *PGRepository) selectNamed(ctx context.Context, dest interface{}, query string, args map[string]interface{}) error {
	q, a, err := r.expand(query, args)
	if err != nil {
		return err
	}
	return r.DB.SelectContext(ctx, dest, q, a...)
}

func (r *PGRepository) expand(query string, args map[string]interface{}) (string, []interface{}, error) {
	q, a, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, err
	}
	q, a, err = sqlx.In(q, a...)
	if err != nil {
		return "", nil, err
	}
	return r.DB.Rebind(q), a, nil
}

// txRepository runs the aggregate statements on one transaction.
type txRepository struct {
	tx *sqlx.Tx
}

func (t *txRepository) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := t.tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, categoryID)
	return exists, err
}

func (t *txRepository) InsertProduct(ctx context.Context, p *model.Product) (int64, error) {
	query := `
        INSERT INTO products (title, description, category_id, featured, shipping_fee, product_details)
        VALUES (:title, :description, :category_id, :featured, :shipping_fee, :product_details)
        RETURNING id
    `
	return t.namedReturningID(ctx, query, p)
}

func (t *txRepository) InsertColor(ctx context.Context, c *model.Color) (int64, error) {
	query := `
        INSERT INTO product_colors (product_id, name, hex_code)
        VALUES (:product_id, :name, :hex_code)
        RETURNING id
    `
	return t.namedReturningID(ctx, query, c)
}

func (t *txRepository) InsertImage(ctx context.Context, img *model.Image) (int64, error) {
	query := `INSERT INTO product_color_images (color_id, url) VALUES (:color_id, :url) RETURNING id`
	return t.namedReturningID(ctx, query, img)
}

func (t *txRepository) SetColorPrimaryImage(ctx context.Context, colorID, imageID int64) error {
	_, err := t.tx.ExecContext(ctx, `UPDATE product_colors SET primary_image_id = $1 WHERE id = $2`, imageID, colorID)
	return err
}

func (t *txRepository) InsertVariant(ctx context.Context, v *model.Variant) (int64, error) {
	var size interface{}
	if v.Size != nil {
		size = string(*v.Size)
	}

	query := `
        INSERT INTO product_variants (product_id, color_id, size, price, offer_price, stock)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	var id int64
	err := t.tx.QueryRowxContext(ctx, query, v.ProductID, v.ColorID, size, v.Price, v.OfferPrice, v.Stock).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, &apperr.Error{
				Kind:    apperr.KindInvalidAggregate,
				Message: "duplicate variant for the same color and size",
				Err:     err,
			}
		}
		return 0, err
	}
	return id, nil
}

func (t *txRepository) SetProductPrimaryVariant(ctx context.Context, productID, variantID int64) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE products SET primary_variant_id = $1, updated_at = NOW() WHERE id = $2`, variantID, productID)
	return err
}

func (t *txRepository) namedReturningID(ctx context.Context, query string, arg interface{}) (int64, error) {
	q, args, err := t.tx.BindNamed(query, arg)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := t.tx.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}
