package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"faktor/internal/domain"
	"faktor/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyInfoRepository. The
// company profile is a singleton row keyed by a constant; Save upserts it.
func NewCompanyRepo(db *sqlx.DB) port.CompanyInfoRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	var info domain.CompanyInfo
	err := r.db.GetContext(ctx, &info,
		"SELECT name, address, city, phone, email, website, updated_at FROM company_info WHERE singleton")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultCompanyInfo(), nil
		}
		return nil, fmt.Errorf("companyRepo.Get: %w", err)
	}
	return &info, nil
}

const companyUpsert = `INSERT INTO company_info (singleton, name, address, city, phone, email, website, updated_at)
	VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (singleton) DO UPDATE SET
		name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city,
		phone = EXCLUDED.phone, email = EXCLUDED.email, website = EXCLUDED.website,
		updated_at = EXCLUDED.updated_at`

func (r *companyRepo) Save(ctx context.Context, info *domain.CompanyInfo) error {
	info.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, companyUpsert,
		info.Name, info.Address, info.City, info.Phone, info.Email, info.Website, info.UpdatedAt)
	if err != nil {
		return fmt.Errorf("companyRepo.Save: %w", err)
	}
	return nil
}

func (r *companyRepo) Reset(ctx context.Context) (*domain.CompanyInfo, error) {
	defaults := domain.DefaultCompanyInfo()
	if err := r.Save(ctx, defaults); err != nil {
		return nil, fmt.Errorf("companyRepo.Reset: %w", err)
	}
	return defaults, nil
}
