package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// PaymentEntry is a payment enriched with the vendor and service it was
// applied to, resolved from the corresponding booking.
type PaymentEntry struct {
	models.Payment
	VendorName  string
	ServiceName string
}

// Overview is the live per-event financial view. It is recomputed from the
// booking and payment rows on every read; nothing here is cached.
type Overview struct {
	EventID          uuid.UUID
	TotalBudget      float64
	TotalPaid        float64
	RemainingBalance float64
	PaymentProgress  float64
	Bookings         []models.VendorBooking
	PaymentHistory   []PaymentEntry
}

// Service aggregates bookings and payments into a budget overview.
type Service interface {
	Overview(ctx context.Context, actorID, eventID uuid.UUID) (*Overview, error)
}

type service struct {
	bookings bookings.BookingRepository
	payments bookings.PaymentRepository
	events   eventLoader
}

// NewService builds a budget tracker.
func NewService(bookingRepo bookings.BookingRepository, paymentRepo bookings.PaymentRepository, events eventLoader) (Service, error) {
	if bookingRepo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if paymentRepo == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	return &service{bookings: bookingRepo, payments: paymentRepo, events: events}, nil
}

var oneHundred = decimal.NewFromInt(100)

// Overview sums booking costs and payment amounts for the event. The
// progress percentage is 0 when no bookings exist; the remaining balance may
// go negative since overpayment is not blocked.
func (s *service) Overview(ctx context.Context, actorID, eventID uuid.UUID) (*Overview, error) {
	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	bookingRows, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	paymentRows, err := s.payments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}

	totalBudget := decimal.Zero
	bookingIndex := make(map[uuid.UUID]models.VendorBooking, len(bookingRows))
	for _, booking := range bookingRows {
		totalBudget = totalBudget.Add(decimal.NewFromFloat(booking.Cost))
		bookingIndex[booking.ID] = booking
	}

	totalPaid := decimal.Zero
	history := make([]PaymentEntry, 0, len(paymentRows))
	for _, payment := range paymentRows {
		totalPaid = totalPaid.Add(decimal.NewFromFloat(payment.Amount))
		entry := PaymentEntry{Payment: payment}
		if booking, ok := bookingIndex[payment.BookingID]; ok {
			entry.VendorName = booking.VendorName
			entry.ServiceName = booking.ServiceName
		}
		history = append(history, entry)
	}

	progress := decimal.Zero
	if totalBudget.IsPositive() {
		progress = totalPaid.Div(totalBudget).Mul(oneHundred).Round(2)
	}

	return &Overview{
		EventID:          eventID,
		TotalBudget:      totalBudget.InexactFloat64(),
		TotalPaid:        totalPaid.InexactFloat64(),
		RemainingBalance: totalBudget.Sub(totalPaid).InexactFloat64(),
		PaymentProgress:  progress.InexactFloat64(),
		Bookings:         bookingRows,
		PaymentHistory:   history,
	}, nil
}
