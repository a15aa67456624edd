package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/pkg/events"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ErrLoanNotFound is returned when a loan id has no persisted loan.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository persists and retrieves booked loans.
type LoanRepository interface {
	Save(ctx context.Context, loan *model.Loan) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)
	List(ctx context.Context, limit, offset int) ([]*model.Loan, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
