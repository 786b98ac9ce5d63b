package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

func TestRecordPaymentAppendsAndFlipsDeposit(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{
		ID:            uuid.New(),
		EventID:       event.ID,
		VendorID:      uuid.New(),
		Cost:          5000,
		DepositAmount: 1500,
		Status:        enums.BookingStatusConfirmed,
	}
	bookingRepo := &stubBookingRepo{booking: booking}
	paymentRepo := &stubPaymentRepo{}
	svc := newBookingTestService(bookingRepo, paymentRepo, &stubEventLoader{event: event})

	payment, err := svc.RecordPayment(context.Background(), owner, booking.ID, RecordPaymentInput{
		Amount:      1500,
		PaymentType: "deposit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.BookingID != booking.ID || payment.EventID != event.ID {
		t.Fatal("payment must reference the booking and its event")
	}
	if !bookingRepo.booking.DepositPaid {
		t.Fatal("deposit payment must mark deposit_paid")
	}
}

func TestRecordPaymentFinalDoesNotTouchDeposit(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), Status: enums.BookingStatusConfirmed}
	bookingRepo := &stubBookingRepo{booking: booking}
	svc := newBookingTestService(bookingRepo, &stubPaymentRepo{}, &stubEventLoader{event: event})

	if _, err := svc.RecordPayment(context.Background(), owner, booking.ID, RecordPaymentInput{
		Amount:      3500,
		PaymentType: "final",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookingRepo.booking.DepositPaid {
		t.Fatal("final payment must not flip deposit_paid")
	}
	if bookingRepo.saves != 0 {
		t.Fatal("booking must not be rewritten for non-deposit payments")
	}
}

func TestRecordPaymentDepositRunsInOneTransaction(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), Status: enums.BookingStatusConfirmed}
	bookingRepo := &stubBookingRepo{booking: booking}
	paymentRepo := &stubPaymentRepo{}
	runner := &stubTxRunner{}
	svc, err := NewService(runner, bookingRepo, paymentRepo, &stubEventLoader{event: event})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.RecordPayment(context.Background(), owner, booking.ID, RecordPaymentInput{
		Amount:      500,
		PaymentType: "deposit",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one transaction, got %d", runner.calls)
	}
	if !paymentRepo.txBound || !bookingRepo.txBound {
		t.Fatal("payment insert and deposit flip must share the transaction")
	}
}

func TestRecordPaymentFailsWhenDepositFlipFails(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), Status: enums.BookingStatusConfirmed}
	bookingRepo := &stubBookingRepo{booking: booking, saveErr: gorm.ErrInvalidTransaction}
	svc := newBookingTestService(bookingRepo, &stubPaymentRepo{}, &stubEventLoader{event: event})

	_, err := svc.RecordPayment(context.Background(), owner, booking.ID, RecordPaymentInput{
		Amount:      500,
		PaymentType: "deposit",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error when the flip fails, got %v", err)
	}
}

func TestRecordPaymentAllowsOverpayment(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), Cost: 1000, Status: enums.BookingStatusConfirmed}
	svc := newBookingTestService(&stubBookingRepo{booking: booking}, &stubPaymentRepo{}, &stubEventLoader{event: event})

	if _, err := svc.RecordPayment(context.Background(), owner, booking.ID, RecordPaymentInput{
		Amount:      9999,
		PaymentType: "partial",
	}); err != nil {
		t.Fatalf("overpayment must be accepted, got %v", err)
	}
}

func TestRecordPaymentGuards(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := &models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), Status: enums.BookingStatusConfirmed}

	cases := []struct {
		name     string
		actor    uuid.UUID
		input    RecordPaymentInput
		status   enums.BookingStatus
		wantCode pkgerrors.Code
	}{
		{"zero amount", owner, RecordPaymentInput{Amount: 0, PaymentType: "deposit"}, enums.BookingStatusConfirmed, pkgerrors.CodeValidation},
		{"unknown type", owner, RecordPaymentInput{Amount: 10, PaymentType: "iou"}, enums.BookingStatusConfirmed, pkgerrors.CodeValidation},
		{"foreign owner", uuid.New(), RecordPaymentInput{Amount: 10, PaymentType: "deposit"}, enums.BookingStatusConfirmed, pkgerrors.CodeNotFound},
		{"cancelled booking", owner, RecordPaymentInput{Amount: 10, PaymentType: "deposit"}, enums.BookingStatusCancelled, pkgerrors.CodeInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scoped := *booking
			scoped.Status = tc.status
			svc := newBookingTestService(&stubBookingRepo{booking: &scoped}, &stubPaymentRepo{}, &stubEventLoader{event: event})

			_, err := svc.RecordPayment(context.Background(), tc.actor, booking.ID, tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != tc.wantCode {
				t.Fatalf("expected code %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestListForEventRequiresOwnership(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	svc := newBookingTestService(&stubBookingRepo{}, &stubPaymentRepo{}, &stubEventLoader{event: event})

	_, err := svc.ListForEvent(context.Background(), uuid.New(), event.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for foreign event, got %v", err)
	}
}

func newBookingTestService(bookings BookingRepository, payments PaymentRepository, events eventLoader) Service {
	svc, err := NewService(&stubTxRunner{}, bookings, payments, events)
	if err != nil {
		panic(err)
	}
	return svc
}

type stubTxRunner struct {
	calls int
}

func (s *stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.calls++
	return fn(&gorm.DB{})
}

type stubBookingRepo struct {
	booking *models.VendorBooking
	saves   int
	saveErr error
	txBound bool
}

func (s *stubBookingRepo) WithTx(tx *gorm.DB) BookingRepository {
	s.txBound = tx != nil
	return s
}
func (s *stubBookingRepo) Create(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	s.booking = booking
	return booking, nil
}
func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorBooking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.booking, nil
}
func (s *stubBookingRepo) Save(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.booking = booking
	s.saves++
	return booking, nil
}
func (s *stubBookingRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.VendorBooking, error) {
	if s.booking == nil || s.booking.EventID != eventID {
		return nil, nil
	}
	return []models.VendorBooking{*s.booking}, nil
}

type stubPaymentRepo struct {
	payments []models.Payment
	txBound  bool
}

func (s *stubPaymentRepo) WithTx(tx *gorm.DB) PaymentRepository {
	s.txBound = tx != nil
	return s
}
func (s *stubPaymentRepo) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	s.payments = append(s.payments, *payment)
	return payment, nil
}
func (s *stubPaymentRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Payment, error) {
	return s.payments, nil
}
func (s *stubPaymentRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubEventLoader struct {
	event *models.Event
}

func (s *stubEventLoader) GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error) {
	if s.event == nil || s.event.ID != eventID || s.event.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
	}
	return s.event, nil
}
