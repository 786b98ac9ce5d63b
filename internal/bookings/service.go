package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Service exposes booking reads and payment recording.
type Service interface {
	ListForEvent(ctx context.Context, actorID, eventID uuid.UUID) ([]models.VendorBooking, error)
	RecordPayment(ctx context.Context, actorID, bookingID uuid.UUID, input RecordPaymentInput) (*models.Payment, error)
}

type service struct {
	tx       txRunner
	bookings BookingRepository
	payments PaymentRepository
	events   eventLoader
	now      func() time.Time
}

// NewService builds a booking service.
func NewService(tx txRunner, bookings BookingRepository, payments PaymentRepository, events eventLoader) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if bookings == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	return &service{tx: tx, bookings: bookings, payments: payments, events: events, now: time.Now}, nil
}

// RecordPaymentInput captures a payment applied against a booking.
type RecordPaymentInput struct {
	Amount          float64
	PaymentType     string
	PaymentMethod   string
	ReferenceNumber string
}

// ListForEvent returns the bookings of an event the actor owns.
func (s *service) ListForEvent(ctx context.Context, actorID, eventID uuid.UUID) ([]models.VendorBooking, error) {
	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return bookings, nil
}

// RecordPayment appends a payment to a booking the actor owns through the
// booking's event. A deposit payment marks the booking's deposit as paid in
// the same transaction as the payment row. The sum of payments is not capped
// at the booking cost.
func (s *service) RecordPayment(ctx context.Context, actorID, bookingID uuid.UUID, input RecordPaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment amount must be positive")
	}
	paymentType, err := enums.ParsePaymentType(input.PaymentType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment type")
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "booking not found")
	}
	if _, err := s.events.GetOwned(ctx, booking.EventID, actorID); err != nil {
		return nil, err
	}
	if booking.Status == enums.BookingStatusCancelled {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidState, "booking is cancelled")
	}

	payment := &models.Payment{
		BookingID:       booking.ID,
		VendorID:        booking.VendorID,
		EventID:         booking.EventID,
		Amount:          input.Amount,
		PaymentType:     paymentType,
		PaymentMethod:   input.PaymentMethod,
		PaymentDate:     s.now().UTC(),
		ReferenceNumber: input.ReferenceNumber,
		Status:          "completed",
	}
	var saved *models.Payment
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		saved, txErr = s.payments.WithTx(tx).Create(ctx, payment)
		if txErr != nil {
			return txErr
		}
		if paymentType == enums.PaymentTypeDeposit && !booking.DepositPaid {
			booking.DepositPaid = true
			if _, txErr = s.bookings.WithTx(tx).Save(ctx, booking); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
	}
	return saved, nil
}
