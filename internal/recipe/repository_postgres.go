package recipe

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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
func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	lines, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipes (
			id,
			user_id,
			name,
			description,
			instructions,
			servings,
			prep_time,
			cook_time,
			ingredients
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Name,
		rec.Description,
		rec.Instructions,
		rec.Servings,
		rec.PrepTime,
		rec.CookTime,
		lines,
	)
	return err
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*Recipe, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, instructions, servings, prep_time, cook_time, ingredients
		FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	rec, err := scanRecipe(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, instructions, servings, prep_time, cook_time, ingredients
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, rec *Recipe) error {
	lines, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE recipes
		SET name = $1,
		    description = $2,
		    instructions = $3,
		    servings = $4,
		    prep_time = $5,
		    cook_time = $6,
		    ingredients = $7
		WHERE id = $8 AND user_id = $9
	`,
		rec.Name,
		rec.Description,
		rec.Instructions,
		rec.Servings,
		rec.PrepTime,
		rec.CookTime,
		lines,
		rec.ID,
		rec.UserID,
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
		DELETE FROM recipes
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

func (r *PostgresRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		DELETE FROM recipes
		WHERE user_id = $1 AND id = ANY($2)
	`, userID, ids)
	return err
}

func scanRecipe(row pgx.Row) (*Recipe, error) {
	var rec Recipe
	var lines []byte

	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Name,
		&rec.Description,
		&rec.Instructions,
		&rec.Servings,
		&rec.PrepTime,
		&rec.CookTime,
		&lines,
	); err != nil {
		return nil, err
	}

	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &rec.Ingredients); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
