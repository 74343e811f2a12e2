package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Calculation is one saved base shear computation: the raw request and the
// raw result, kept as JSON so older rows survive schema changes in the calc
// packages.
type Calculation struct {
	ID        int             `json:"id"`
	Revision  int             `json:"revision"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID, revision int, input, result []byte) (int, error)
	ListCalculations(ctx context.Context, userID int) ([]Calculation, error)
	DeleteCalculation(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID, revision int, input, result []byte) (int, error) {
	var id int
	query := `INSERT INTO calculations (user_id, revision, input, result, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, revision, input, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID int) ([]Calculation, error) {
	query := `SELECT id, revision, input, result, created_at FROM calculations
	          WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Revision, &c.Input, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) DeleteCalculation(ctx context.Context, userID, id int) error {
	query := "DELETE FROM calculations WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
