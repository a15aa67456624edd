package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	pkgpostgres "github.com/loanworks/amortization-service/pkg/postgres"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	db pkgpostgres.Querier
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{db: pool}
}

// NewLoanRepoWithQuerier creates a repository bound to an existing querier,
// typically a transaction.
func NewLoanRepoWithQuerier(db pkgpostgres.Querier) *LoanRepo {
	return &LoanRepo{db: db}
}

const loanColumns = `
	id, principal, currency, annual_rate, compounding,
	term, frequency, amortization_type,
	origination_date, first_payment_date,
	version, created_at, updated_at
`

// Save persists a loan. Inserts are guarded by optimistic locking on version.
func (r *LoanRepo) Save(ctx context.Context, loan *model.Loan) error {
	query := `
		INSERT INTO loans (
			id, principal, currency, annual_rate, compounding,
			term, frequency, amortization_type,
			origination_date, first_payment_date,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			version    = loans.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE loans.version = $11
	`

	tag, err := r.db.Exec(ctx, query,
		loan.ID(), loan.Principal().Amount(), loan.Principal().Currency().Code(),
		loan.AnnualRate().Rate(), loan.AnnualRate().Compounding().String(),
		loan.Term().String(), loan.Frequency().String(), loan.AmortizationType().String(),
		loan.OriginationDate(), loan.FirstPaymentDate(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan")
	}
	return nil
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	loan, err := scanLoanRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// List retrieves booked loans ordered newest first.
func (r *LoanRepo) List(ctx context.Context, limit, offset int) ([]*model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []*model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanLoanRow(s scannable) (*model.Loan, error) {
	var (
		id                   uuid.UUID
		principal            decimal.Decimal
		currencyCode         string
		annualRate           decimal.Decimal
		compoundingStr       string
		termStr              string
		frequencyStr         string
		amortizationStr      string
		originationDate      time.Time
		firstPaymentDate     time.Time
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &principal, &currencyCode, &annualRate, &compoundingStr,
		&termStr, &frequencyStr, &amortizationStr,
		&originationDate, &firstPaymentDate,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan loan: %w", err)
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("parse currency: %w", err)
	}
	compounding, err := money.NewCompounding(compoundingStr)
	if err != nil {
		return nil, fmt.Errorf("parse compounding: %w", err)
	}
	rate, err := money.NewInterestRate(annualRate, compounding)
	if err != nil {
		return nil, fmt.Errorf("parse rate: %w", err)
	}
	term, err := temporal.ParsePeriod(termStr)
	if err != nil {
		return nil, fmt.Errorf("parse term: %w", err)
	}
	frequency, err := temporal.NewPaymentFrequency(frequencyStr)
	if err != nil {
		return nil, fmt.Errorf("parse frequency: %w", err)
	}
	amortizationType, err := valueobject.NewAmortizationType(amortizationStr)
	if err != nil {
		return nil, fmt.Errorf("parse amortization type: %w", err)
	}

	return model.RehydrateLoan(
		id, money.New(principal, currency), rate, term,
		frequency, amortizationType, originationDate, firstPaymentDate,
		version, createdAt, updatedAt,
	)
}
