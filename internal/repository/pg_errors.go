package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return domain.ErrDuplicateEmail
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrUnknownClient
	}
	return err
}
