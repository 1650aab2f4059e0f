package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

type PgClientRepo struct{ db *pgxpool.Pool }

func NewPgClientRepo(db *pgxpool.Pool) *PgClientRepo { return &PgClientRepo{db: db} }

func (r *PgClientRepo) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, int32, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, phone_number
		 FROM clients ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PgClientRepo) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone_number FROM clients WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgClientRepo) EmailTaken(ctx context.Context, email string, exceptID int32) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE email=$1 AND id<>$2)`, email, exceptID).
		Scan(&taken)
	return taken, err
}

func (r *PgClientRepo) CreateClient(ctx context.Context, c domain.Client) (int32, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int32
	if err := tx.QueryRow(ctx,
		`INSERT INTO clients (first_name, last_name, email, phone_number)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		c.FirstName, c.LastName, c.Email, c.PhoneNumber,
	).Scan(&id); err != nil {
		return 0, mapPgErr(err)
	}

	for _, a := range c.Applications {
		if _, err := tx.Exec(ctx,
			`INSERT INTO applications (client_id, term, amount, currency) VALUES ($1,$2,$3,$4)`,
			id, a.Term, toNumeric(a.Amount), a.Currency,
		); err != nil {
			return 0, mapPgErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PgClientRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET first_name=$1, last_name=$2, email=$3, phone_number=$4 WHERE id=$5`,
		c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.ID)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgClientRepo) DeleteClient(ctx context.Context, id int32) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE client_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
