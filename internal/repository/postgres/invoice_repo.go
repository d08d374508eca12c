package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"faktor/internal/domain"
	"faktor/internal/port"
)

// invoiceRow maps the invoices table, with the customer snapshot flattened
// into customer_* columns. The snapshot is copied at creation time and
// never re-resolved against the customers table.
type invoiceRow struct {
	ID                 uuid.UUID            `db:"id"`
	InvoiceNumber      string               `db:"invoice_number"`
	Status             domain.InvoiceStatus `db:"status"`
	Date               time.Time            `db:"date"`
	DueDate            time.Time            `db:"due_date"`
	CustomerID         uuid.UUID            `db:"customer_id"`
	CustomerName       string               `db:"customer_name"`
	CustomerEmail      string               `db:"customer_email"`
	CustomerPhone      string               `db:"customer_phone"`
	CustomerAddress    string               `db:"customer_address"`
	CustomerCity       string               `db:"customer_city"`
	CustomerPostalCode string               `db:"customer_postal_code"`
	Notes              string               `db:"notes"`
	TaxRate            float64              `db:"tax_rate"`
	DiscountRate       float64              `db:"discount_rate"`
	Currency           domain.Currency      `db:"currency"`
	AccountNumber      string               `db:"account_number"`
	CreatedAt          time.Time            `db:"created_at"`
	UpdatedAt          time.Time            `db:"updated_at"`
}

func (r *invoiceRow) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		Status:        r.Status,
		Date:          r.Date,
		DueDate:       r.DueDate,
		Customer: domain.Customer{
			ID:         r.CustomerID,
			Name:       r.CustomerName,
			Email:      r.CustomerEmail,
			Phone:      r.CustomerPhone,
			Address:    r.CustomerAddress,
			City:       r.CustomerCity,
			PostalCode: r.CustomerPostalCode,
		},
		Notes:         r.Notes,
		TaxRate:       r.TaxRate,
		DiscountRate:  r.DiscountRate,
		Currency:      r.Currency,
		AccountNumber: r.AccountNumber,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceInsert = `INSERT INTO invoices (
	id, invoice_number, status, date, due_date,
	customer_id, customer_name, customer_email, customer_phone,
	customer_address, customer_city, customer_postal_code,
	notes, tax_rate, discount_rate, currency, account_number,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

const itemInsert = `INSERT INTO invoice_items (id, invoice_id, position, description, quantity, unit_price)
	VALUES ($1, $2, $3, $4, $5, $6)`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, invoiceInsert,
		inv.ID, inv.InvoiceNumber, inv.Status, inv.Date, inv.DueDate,
		inv.Customer.ID, inv.Customer.Name, inv.Customer.Email, inv.Customer.Phone,
		inv.Customer.Address, inv.Customer.City, inv.Customer.PostalCode,
		inv.Notes, inv.TaxRate, inv.DiscountRate, inv.Currency, inv.AccountNumber,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_number") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := insertItems(ctx, tx, inv.ID, inv.Items); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx *sqlx.Tx, invoiceID uuid.UUID, items []domain.InvoiceItem) error {
	for i := range items {
		items[i].ID = uuid.New()
		items[i].InvoiceID = invoiceID
		items[i].Position = i
		_, err := tx.ExecContext(ctx, itemInsert,
			items[i].ID, invoiceID, i, items[i].Description, items[i].Quantity, items[i].UnitPrice)
		if err != nil {
			return fmt.Errorf("invoiceRepo insert item %d: %w", i, err)
		}
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	inv := row.toDomain()
	err = r.db.SelectContext(ctx, &inv.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

// sortClauses maps sort options to ORDER BY clauses. total_amount sorts by
// the derived invoice total computed in SQL; it is never a stored column.
var sortClauses = map[domain.InvoiceSortOption]string{
	domain.SortDateNewest:    "date DESC",
	domain.SortDateOldest:    "date ASC",
	domain.SortInvoiceNumber: "invoice_number ASC",
	domain.SortCustomerName:  "customer_name ASC",
	domain.SortTotalAmount: `(SELECT COALESCE(SUM(quantity * unit_price), 0) FROM invoice_items
		WHERE invoice_id = invoices.id) * (1 - discount_rate / 100) * (1 + tax_rate / 100) DESC`,
}

func (r *invoiceRepo) List(ctx context.Context, query string, sort domain.InvoiceSortOption, offset, limit int) ([]domain.Invoice, int, error) {
	orderBy, ok := sortClauses[sort]
	if !ok {
		orderBy = sortClauses[domain.SortDateNewest]
	}

	where := ""
	args := []interface{}{}
	if query != "" {
		where = `WHERE invoice_number ILIKE $1 OR customer_name ILIKE $1 OR notes ILIKE $1
			OR EXISTS (SELECT 1 FROM invoice_items it WHERE it.invoice_id = invoices.id AND it.description ILIKE $1)`
		args = append(args, "%"+query+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	// limit <= 0 disables pagination; exports fetch everything in one pass.
	limitClause := "ALL"
	if limit > 0 {
		limitClause = strconv.Itoa(limit)
	}
	listQuery := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY %s LIMIT %s OFFSET %d",
		where, orderBy, limitClause, offset)
	var rows []invoiceRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Invoice{}, total, nil
	}

	invoices := make([]domain.Invoice, len(rows))
	ids := make([]uuid.UUID, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i := range rows {
		invoices[i] = rows[i].toDomain()
		ids[i] = rows[i].ID
		index[rows[i].ID] = i
	}

	itemsQuery, itemArgs, err := sqlx.In(
		"SELECT * FROM invoice_items WHERE invoice_id IN (?) ORDER BY position", ids)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List items query: %w", err)
	}
	var items []domain.InvoiceItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(itemsQuery), itemArgs...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List items: %w", err)
	}
	for i := range items {
		if idx, ok := index[items[i].InvoiceID]; ok {
			invoices[idx].Items = append(invoices[idx].Items, items[i])
		}
	}
	return invoices, total, nil
}

const invoiceUpdate = `UPDATE invoices SET
	invoice_number = $1, status = $2, date = $3, due_date = $4,
	customer_id = $5, customer_name = $6, customer_email = $7, customer_phone = $8,
	customer_address = $9, customer_city = $10, customer_postal_code = $11,
	notes = $12, tax_rate = $13, discount_rate = $14, currency = $15,
	account_number = $16, updated_at = $17
	WHERE id = $18`

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, invoiceUpdate,
		inv.InvoiceNumber, inv.Status, inv.Date, inv.DueDate,
		inv.Customer.ID, inv.Customer.Name, inv.Customer.Email, inv.Customer.Phone,
		inv.Customer.Address, inv.Customer.City, inv.Customer.PostalCode,
		inv.Notes, inv.TaxRate, inv.DiscountRate, inv.Currency,
		inv.AccountNumber, inv.UpdatedAt, inv.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_number") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	// Items are replaced wholesale; the invoice is saved as one object.
	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update clear items: %w", err)
	}
	if err := insertItems(ctx, tx, inv.ID, inv.Items); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const statsQuery = `SELECT
	COUNT(*) AS total_count,
	COALESCE(SUM(COALESCE(it.sub, 0) * (1 - i.discount_rate / 100) * (1 + i.tax_rate / 100)), 0) AS total_revenue,
	COUNT(*) FILTER (WHERE date_trunc('month', i.date) = date_trunc('month', now())) AS count_this_month
	FROM invoices i
	LEFT JOIN (
		SELECT invoice_id, SUM(quantity * unit_price) AS sub
		FROM invoice_items GROUP BY invoice_id
	) it ON it.invoice_id = i.id`

func (r *invoiceRepo) Stats(ctx context.Context) (*domain.InvoiceStats, error) {
	var stats struct {
		TotalCount     int     `db:"total_count"`
		TotalRevenue   float64 `db:"total_revenue"`
		CountThisMonth int     `db:"count_this_month"`
	}
	if err := r.db.GetContext(ctx, &stats, statsQuery); err != nil {
		return nil, fmt.Errorf("invoiceRepo.Stats: %w", err)
	}
	return &domain.InvoiceStats{
		TotalCount:     stats.TotalCount,
		TotalRevenue:   stats.TotalRevenue,
		CountThisMonth: stats.CountThisMonth,
	}, nil
}
