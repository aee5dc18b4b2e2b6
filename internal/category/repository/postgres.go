package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/category"
	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

var _ category.Repository = (*PGRepository)(nil)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Create inserts c and fills its id and timestamps.
func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (name, parent_id)
        VALUES (:name, :parent_id)
        RETURNING id, created_at, updated_at
    `
	q, args, err := r.DB.BindNamed(query, c)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowxContext(ctx, q, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflict(fmt.Sprintf("category %q already exists", c.Name))
		}
		return err
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	query := `SELECT id, name, parent_id, created_at, updated_at FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	query := `SELECT id, name, parent_id, created_at, updated_at FROM categories WHERE name = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	categories := []model.Category{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	switch {
	case f.RootOnly:
		conditions = append(conditions, "parent_id IS NULL")
	case f.ParentID != nil:
		conditions = append(conditions, "parent_id = :parent_id")
		args["parent_id"] = *f.ParentID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM categories"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, err
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	query := "SELECT id, name, parent_id, created_at, updated_at FROM categories" + whereClause + " ORDER BY name ASC, id ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &categories, args); err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}
