package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanworks/amortization-service/internal/application/usecase"
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/events"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// --- Mock implementations ---

type mockLoanRepo struct {
	saved    []*model.Loan
	saveErr  error
	findFunc func(ctx context.Context, id uuid.UUID) (*model.Loan, error)
	listFunc func(ctx context.Context, limit, offset int) ([]*model.Loan, error)
}

func (m *mockLoanRepo) Save(_ context.Context, loan *model.Loan) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, loan)
	return nil
}

func (m *mockLoanRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return nil, port.ErrLoanNotFound
}

func (m *mockLoanRepo) List(ctx context.Context, limit, offset int) ([]*model.Loan, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

type mockPublisher struct {
	publishErr error
	published  []events.DomainEvent
}

func (m *mockPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, evts...)
	return nil
}

// --- Helpers ---

func buildTestHandler(repo *mockLoanRepo) *AmortizationHandler {
	publisher := &mockPublisher{}
	return NewAmortizationHandler(
		usecase.NewBookLoanUseCase(repo, publisher),
		usecase.NewGetLoanUseCase(repo),
		usecase.NewListLoansUseCase(repo),
		usecase.NewGenerateScheduleUseCase(repo, publisher),
		usecase.NewPriceScheduleUseCase(repo),
	)
}

func testLoan(t *testing.T) *model.Loan {
	t.Helper()
	rate, err := money.NewRateFromPercent(decimal.RequireFromString("6.5"), money.CompoundingMonthly)
	require.NoError(t, err)
	term, err := temporal.ParsePeriod("12M")
	require.NoError(t, err)
	loan, err := model.NewLoan(
		money.New(decimal.NewFromInt(12000), money.USD), rate, term,
		temporal.FrequencyMonthly, valueobject.AmortizationLevelPayment,
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), time.Time{},
	)
	require.NoError(t, err)
	return loan
}

func statusCode(t *testing.T, err error) codes.Code {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a gRPC status error, got %v", err)
	return st.Code()
}

// --- Tests ---

func TestAmortizationHandler_BookLoan(t *testing.T) {
	t.Run("books a loan", func(t *testing.T) {
		repo := &mockLoanRepo{}
		h := buildTestHandler(repo)

		resp, err := h.BookLoan(context.Background(), &BookLoanRequest{
			Principal:        "300000",
			Currency:         "USD",
			RatePercent:      "6.5",
			Term:             "30Y",
			Frequency:        "MONTHLY",
			AmortizationType: "LEVEL_PAYMENT",
			OriginationDate:  "2025-01-15",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.LoanID)
		assert.Equal(t, "USD", resp.Currency)
		assert.Equal(t, int32(360), resp.NumberOfPayments)
		assert.Equal(t, "2025-02-15", resp.FirstPaymentDate)
		assert.NotEmpty(t, resp.Payment)
		require.Len(t, repo.saved, 1)
	})

	t.Run("rejects a malformed principal", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.BookLoan(context.Background(), &BookLoanRequest{
			Principal:       "lots",
			Currency:        "USD",
			RatePercent:     "6.5",
			Term:            "30Y",
			OriginationDate: "2025-01-15",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, statusCode(t, err))
	})

	t.Run("maps domain validation failures", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.BookLoan(context.Background(), &BookLoanRequest{
			Principal:        "0",
			Currency:         "USD",
			RatePercent:      "6.5",
			Term:             "30Y",
			Frequency:        "MONTHLY",
			AmortizationType: "LEVEL_PAYMENT",
			OriginationDate:  "2025-01-15",
		})
		require.Error(t, err)
		st, _ := status.FromError(err)
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Equal(t, "principal must be positive", st.Message())
	})

	t.Run("rejects a nil request", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.BookLoan(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, statusCode(t, err))
	})
}

func TestAmortizationHandler_GetLoan(t *testing.T) {
	t.Run("returns the loan", func(t *testing.T) {
		loan := testLoan(t)
		repo := &mockLoanRepo{
			findFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		h := buildTestHandler(repo)

		resp, err := h.GetLoan(context.Background(), &GetLoanRequest{LoanID: loan.ID().String()})
		require.NoError(t, err)
		assert.Equal(t, loan.ID().String(), resp.LoanID)
		assert.Equal(t, "12M", resp.Term)
	})

	t.Run("maps a missing loan to NotFound", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.GetLoan(context.Background(), &GetLoanRequest{LoanID: uuid.NewString()})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, statusCode(t, err))
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.GetLoan(context.Background(), &GetLoanRequest{LoanID: "nope"})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, statusCode(t, err))
	})
}

func TestAmortizationHandler_ListLoans(t *testing.T) {
	loan := testLoan(t)
	repo := &mockLoanRepo{
		listFunc: func(_ context.Context, _, _ int) ([]*model.Loan, error) {
			return []*model.Loan{loan}, nil
		},
	}
	h := buildTestHandler(repo)

	resp, err := h.ListLoans(context.Background(), &ListLoansRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Loans, 1)
	assert.Equal(t, loan.ID().String(), resp.Loans[0].LoanID)
}

func TestAmortizationHandler_GenerateSchedule(t *testing.T) {
	loan := testLoan(t)
	repo := &mockLoanRepo{
		findFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
			return loan, nil
		},
	}
	h := buildTestHandler(repo)

	resp, err := h.GenerateSchedule(context.Background(), &GenerateScheduleRequest{LoanID: loan.ID().String()})
	require.NoError(t, err)

	assert.Equal(t, loan.ID().String(), resp.LoanID)
	require.Len(t, resp.Flows, 24)
	assert.Equal(t, "2025-02-15", resp.Flows[0].Date)
	assert.Equal(t, "INTEREST", resp.Flows[0].Type)
}

func TestAmortizationHandler_PriceSchedule(t *testing.T) {
	t.Run("prices the schedule", func(t *testing.T) {
		loan := testLoan(t)
		repo := &mockLoanRepo{
			findFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		h := buildTestHandler(repo)

		resp, err := h.PriceSchedule(context.Background(), &PriceScheduleRequest{
			LoanID:              loan.ID().String(),
			DiscountRatePercent: "5",
			ValuationDate:       "2025-01-15",
		})
		require.NoError(t, err)
		assert.Equal(t, loan.ID().String(), resp.LoanID)
		assert.NotEmpty(t, resp.PresentValue)
		assert.Equal(t, "2025-01-15", resp.ValuationDate)
	})

	t.Run("rejects a malformed valuation date", func(t *testing.T) {
		h := buildTestHandler(&mockLoanRepo{})

		_, err := h.PriceSchedule(context.Background(), &PriceScheduleRequest{
			LoanID:              uuid.NewString(),
			DiscountRatePercent: "5",
			ValuationDate:       "someday",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, statusCode(t, err))
	})
}
