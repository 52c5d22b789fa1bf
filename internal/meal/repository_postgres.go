package meal

import (
	"context"

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
func (r *PostgresRepository) Create(ctx context.Context, m *Meal) error {
	query := `
		INSERT INTO meals (id, user_id, meal_date, time_slot, recipe_id, done)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Date,
		string(m.Time),
		m.RecipeID,
		m.Done,
	)
	return err
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*Meal, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, meal_date, time_slot, recipe_id, done
		FROM meals
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	m, err := scanMeal(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Meal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, meal_date, time_slot, recipe_id, done
		FROM meals
		WHERE user_id = $1
		ORDER BY meal_date, created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, m *Meal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meals
		SET meal_date = $1,
		    time_slot = $2,
		    recipe_id = $3,
		    done = $4
		WHERE id = $5 AND user_id = $6
	`,
		m.Date,
		string(m.Time),
		m.RecipeID,
		m.Done,
		m.ID,
		m.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkDone(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meals
		SET done = TRUE
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
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM meals
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

func (r *PostgresRepository) DeleteByRecipeIDs(ctx context.Context, userID string, recipeIDs []string) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		DELETE FROM meals
		WHERE user_id = $1 AND recipe_id = ANY($2)
	`, userID, recipeIDs)
	return err
}

func scanMeal(row pgx.Row) (*Meal, error) {
	var m Meal
	var slot string

	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Date,
		&slot,
		&m.RecipeID,
		&m.Done,
	); err != nil {
		return nil, err
	}
	m.Time = Slot(slot)
	return &m, nil
}
