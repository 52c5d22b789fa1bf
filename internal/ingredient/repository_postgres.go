package ingredient

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahi55555/pantry/internal/date"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	query := `
		INSERT INTO ingredients (
			id,
			user_id,
			name,
			unit,
			category,
			quantity,
			min_quantity,
			expiry_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		ing.ID,
		ing.UserID,
		ing.Name,
		ing.Unit,
		string(ing.Category),
		ing.Quantity,
		ing.MinQuantity,
		expiryParam(ing.ExpiryDate),
	)
	return err
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, unit, category, quantity, min_quantity, expiry_date
		FROM ingredients
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	ing, err := scanIngredient(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return ing, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, unit, category, quantity, min_quantity, expiry_date
		FROM ingredients
		WHERE user_id = $1
		ORDER BY LOWER(name)
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ing)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $1,
		    unit = $2,
		    category = $3,
		    quantity = $4,
		    min_quantity = $5,
		    expiry_date = $6
		WHERE id = $7 AND user_id = $8
	`,
		ing.Name,
		ing.Unit,
		string(ing.Category),
		ing.Quantity,
		ing.MinQuantity,
		expiryParam(ing.ExpiryDate),
		ing.ID,
		ing.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM ingredients
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Scanning helpers
// --------------------------------------------------

func expiryParam(d *date.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return &t
}

func scanIngredient(row pgx.Row) (*Ingredient, error) {
	var ing Ingredient
	var category string
	var expiry *time.Time

	if err := row.Scan(
		&ing.ID,
		&ing.UserID,
		&ing.Name,
		&ing.Unit,
		&category,
		&ing.Quantity,
		&ing.MinQuantity,
		&expiry,
	); err != nil {
		return nil, err
	}

	ing.Category = Category(category)
	if expiry != nil {
		d := date.FromTime(*expiry)
		ing.ExpiryDate = &d
	}
	return &ing, nil
}
