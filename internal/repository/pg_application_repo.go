package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

type PgApplicationRepo struct{ db *pgxpool.Pool }

func NewPgApplicationRepo(db *pgxpool.Pool) *PgApplicationRepo { return &PgApplicationRepo{db: db} }

func (r *PgApplicationRepo) ListApplications(ctx context.Context, limit, offset int) ([]domain.Application, int32, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, term, amount, currency
		 FROM applications ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PgApplicationRepo) GetApplication(ctx context.Context, id int32) (*domain.Application, error) {
	a, err := scanApplication(r.db.QueryRow(ctx,
		`SELECT id, client_id, term, amount, currency FROM applications WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgApplicationRepo) ClientExists(ctx context.Context, clientID int32) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id=$1)`, clientID).Scan(&ok)
	return ok, err
}

func (r *PgApplicationRepo) CreateApplication(ctx context.Context, a domain.Application) (int32, error) {
	var id int32
	if err := r.db.QueryRow(ctx,
		`INSERT INTO applications (client_id, term, amount, currency)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		a.ClientID, a.Term, toNumeric(a.Amount), a.Currency,
	).Scan(&id); err != nil {
		return 0, mapPgErr(err)
	}
	return id, nil
}

func (r *PgApplicationRepo) UpdateApplication(ctx context.Context, a domain.Application) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET client_id=$1, term=$2, amount=$3, currency=$4 WHERE id=$5`,
		a.ClientID, a.Term, toNumeric(a.Amount), a.Currency, a.ID)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgApplicationRepo) DeleteApplication(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		a   domain.Application
		amt pgtype.Numeric
	)
	if err := row.Scan(&a.ID, &a.ClientID, &a.Term, &amt, &a.Currency); err != nil {
		return a, err
	}
	a.Amount = fromNumeric(amt)
	return a, nil
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
