package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type stateCodeRepo struct {
	db *sqlx.DB
}

// NewStateCodeRepo creates a new PostgreSQL-backed StateCodeRepository.
func NewStateCodeRepo(db *sqlx.DB) port.StateCodeRepository {
	return &stateCodeRepo{db: db}
}

func (r *stateCodeRepo) LookupByName(ctx context.Context, name string) (*domain.StateCode, error) {
	var sc domain.StateCode
	err := r.db.GetContext(ctx, &sc,
		"SELECT code, name FROM state_codes WHERE LOWER(name) = LOWER($1)",
		strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stateCodeRepo.LookupByName: %w", err)
	}
	return &sc, nil
}

func (r *stateCodeRepo) LoadAll(ctx context.Context) ([]domain.StateCode, error) {
	var codes []domain.StateCode
	err := r.db.SelectContext(ctx, &codes,
		"SELECT code, name FROM state_codes ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("stateCodeRepo.LoadAll: %w", err)
	}
	return codes, nil
}
