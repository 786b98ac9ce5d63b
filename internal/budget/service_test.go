package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

func TestOverviewMath(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	bookingOne := models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), VendorName: "Grand Hall", ServiceName: "Venue Rental", Cost: 12000}
	bookingTwo := models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), VendorName: "Lens Co", ServiceName: "Full Day Shoot", Cost: 2500}

	bookingRepo := &stubBookingLister{rows: []models.VendorBooking{bookingOne, bookingTwo}}
	paymentRepo := &stubPaymentLister{rows: []models.Payment{
		{ID: uuid.New(), BookingID: bookingOne.ID, EventID: event.ID, Amount: 3600, PaymentType: enums.PaymentTypeDeposit},
		{ID: uuid.New(), BookingID: bookingTwo.ID, EventID: event.ID, Amount: 2500, PaymentType: enums.PaymentTypeFinal},
	}}
	svc := newBudgetTestService(bookingRepo, paymentRepo, &stubEventLoader{event: event})

	overview, err := svc.Overview(context.Background(), owner, event.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalBudget != 14500 {
		t.Fatalf("expected total_budget 14500, got %v", overview.TotalBudget)
	}
	if overview.TotalPaid != 6100 {
		t.Fatalf("expected total_paid 6100, got %v", overview.TotalPaid)
	}
	if overview.RemainingBalance != 8400 {
		t.Fatalf("expected remaining_balance 8400, got %v", overview.RemainingBalance)
	}
	if diff := overview.PaymentProgress - 42.07; diff < -0.005 || diff > 0.005 {
		t.Fatalf("expected payment_progress ≈ 42.07, got %v", overview.PaymentProgress)
	}
	if len(overview.Bookings) != 2 {
		t.Fatalf("expected per-booking list, got %d rows", len(overview.Bookings))
	}
}

func TestOverviewEnrichesPaymentHistory(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	booking := models.VendorBooking{ID: uuid.New(), EventID: event.ID, VendorID: uuid.New(), VendorName: "Tasty Co", ServiceName: "Dinner Buffet", Cost: 4000}

	bookingRepo := &stubBookingLister{rows: []models.VendorBooking{booking}}
	paymentRepo := &stubPaymentLister{rows: []models.Payment{
		{ID: uuid.New(), BookingID: booking.ID, EventID: event.ID, Amount: 1200, PaymentType: enums.PaymentTypeDeposit},
		{ID: uuid.New(), BookingID: uuid.New(), EventID: event.ID, Amount: 100, PaymentType: enums.PaymentTypePartial},
	}}
	svc := newBudgetTestService(bookingRepo, paymentRepo, &stubEventLoader{event: event})

	overview, err := svc.Overview(context.Background(), owner, event.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.PaymentHistory) != 2 {
		t.Fatalf("expected both payments in history, got %d", len(overview.PaymentHistory))
	}
	if overview.PaymentHistory[0].VendorName != "Tasty Co" || overview.PaymentHistory[0].ServiceName != "Dinner Buffet" {
		t.Fatal("payment must carry vendor and service names from its booking")
	}
	if overview.PaymentHistory[1].VendorName != "" {
		t.Fatal("orphan payment must not borrow another booking's names")
	}
}

func TestOverviewZeroBookings(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OwnerID: owner}
	svc := newBudgetTestService(&stubBookingLister{}, &stubPaymentLister{}, &stubEventLoader{event: event})

	overview, err := svc.Overview(context.Background(), owner, event.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalBudget != 0 || overview.PaymentProgress != 0 {
		t.Fatalf("empty event must report zero totals and progress, got %+v", overview)
	}
}

func TestOverviewRequiresOwnership(t *testing.T) {
	t.Parallel()

	event := &models.Event{ID: uuid.New(), OwnerID: uuid.New()}
	svc := newBudgetTestService(&stubBookingLister{}, &stubPaymentLister{}, &stubEventLoader{event: event})

	_, err := svc.Overview(context.Background(), uuid.New(), event.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for foreign event, got %v", err)
	}
}

func newBudgetTestService(b bookings.BookingRepository, p bookings.PaymentRepository, events eventLoader) Service {
	svc, err := NewService(b, p, events)
	if err != nil {
		panic(err)
	}
	return svc
}

type stubBookingLister struct {
	rows []models.VendorBooking
}

func (s *stubBookingLister) WithTx(tx *gorm.DB) bookings.BookingRepository { return s }
func (s *stubBookingLister) Create(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	s.rows = append(s.rows, *booking)
	return booking, nil
}
func (s *stubBookingLister) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorBooking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubBookingLister) Save(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	return booking, nil
}
func (s *stubBookingLister) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.VendorBooking, error) {
	return s.rows, nil
}

type stubPaymentLister struct {
	rows []models.Payment
}

func (s *stubPaymentLister) WithTx(tx *gorm.DB) bookings.PaymentRepository { return s }
func (s *stubPaymentLister) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	s.rows = append(s.rows, *payment)
	return payment, nil
}
func (s *stubPaymentLister) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Payment, error) {
	return s.rows, nil
}
func (s *stubPaymentLister) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error) {
	return s.rows, nil
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

