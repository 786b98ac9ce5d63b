package finalize

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/internal/appointments"
	"github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	"github.com/urevent360-byte/urevent360app-sub000/internal/calendar"
	"github.com/urevent360-byte/urevent360app-sub000/internal/events"
	"github.com/urevent360-byte/urevent360app-sub000/internal/planner"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Result is what a successful finalization produced.
type Result struct {
	Bookings  []models.VendorBooking
	TotalCost float64
	Event     *models.Event
}

// Service converts a planner cart into vendor bookings.
type Service interface {
	Finalize(ctx context.Context, actorID, eventID uuid.UUID) (*Result, error)
}

type service struct {
	tx       txRunner
	events   events.EventRepository
	loader   eventLoader
	states   planner.StateRepository
	appts    appointments.AppointmentRepository
	bookings bookings.BookingRepository
	calendar calendar.CalendarRepository
	locks    *keylock.KeyLock
	now      func() time.Time
}

// NewService builds the finalizer.
func NewService(
	tx txRunner,
	eventRepo events.EventRepository,
	loader eventLoader,
	states planner.StateRepository,
	appts appointments.AppointmentRepository,
	bookingRepo bookings.BookingRepository,
	cal calendar.CalendarRepository,
	locks *keylock.KeyLock,
) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if eventRepo == nil {
		return nil, fmt.Errorf("event repository required")
	}
	if loader == nil {
		return nil, fmt.Errorf("event loader required")
	}
	if states == nil {
		return nil, fmt.Errorf("planner state repository required")
	}
	if appts == nil {
		return nil, fmt.Errorf("appointment repository required")
	}
	if bookingRepo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if cal == nil {
		return nil, fmt.Errorf("calendar repository required")
	}
	if locks == nil {
		return nil, fmt.Errorf("key lock required")
	}
	return &service{
		tx:       tx,
		events:   eventRepo,
		loader:   loader,
		states:   states,
		appts:    appts,
		bookings: bookingRepo,
		calendar: cal,
		locks:    locks,
		now:      time.Now,
	}, nil
}

var depositRate = decimal.NewFromFloat(0.30)

// Finalize turns every cart item into a confirmed VendorBooking, schedules
// the payment reminders, clears the cart and flips the event to booked. All
// effects commit together or not at all; the per-event lock keeps concurrent
// finalize and cart writes serial.
func (s *service) Finalize(ctx context.Context, actorID, eventID uuid.UUID) (*Result, error) {
	event, err := s.loader.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	var result *Result
	err = s.locks.WithLock(eventID.String(), func() error {
		var lockErr error
		result, lockErr = s.finalizeLocked(ctx, event)
		return lockErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) finalizeLocked(ctx context.Context, event *models.Event) (*Result, error) {
	state, err := s.states.FindByEventID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidState, "No items in cart to finalize")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load planner state")
	}
	if len(state.CartItems) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidState, "No items in cart to finalize")
	}

	confirmed, err := s.appts.ListConfirmedByEvent(ctx, event.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load confirmed appointments")
	}
	confirmedVendors := make(map[uuid.UUID]struct{}, len(confirmed))
	for _, appointment := range confirmed {
		confirmedVendors[appointment.VendorID] = struct{}{}
	}
	missing := map[uuid.UUID]struct{}{}
	for _, item := range state.CartItems {
		if _, ok := confirmedVendors[item.VendorID]; !ok {
			missing[item.VendorID] = struct{}{}
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodePrecondition, fmt.Sprintf(
			"Please schedule and confirm appointments with all vendors before finalizing. Missing appointments for %d vendors", len(missing)))
	}

	created := make([]models.VendorBooking, 0, len(state.CartItems))
	total := decimal.Zero
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		bookingRepo := s.bookings.WithTx(tx)
		for _, item := range state.CartItems {
			cost := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
			deposit := cost.Mul(depositRate).Round(2)
			booking := &models.VendorBooking{
				EventID:         event.ID,
				VendorID:        item.VendorID,
				VendorName:      item.VendorName,
				ServiceType:     item.ServiceType,
				ServiceName:     item.ServiceName,
				Cost:            cost.InexactFloat64(),
				DepositAmount:   deposit.InexactFloat64(),
				Status:          enums.BookingStatusConfirmed,
				InvoiceID:       newInvoiceID(),
				FinalPaymentDue: event.Date,
				EventDate:       event.Date,
			}
			saved, txErr := bookingRepo.Create(ctx, booking)
			if txErr != nil {
				return txErr
			}
			created = append(created, *saved)
			total = total.Add(cost)
		}

		if txErr := s.calendar.WithTx(tx).CreateBatch(ctx, s.paymentReminders(event, total)); txErr != nil {
			return txErr
		}

		state.CartItems = []models.CartItem{}
		planner.RecomputeBudget(state)
		if _, txErr := s.states.WithTx(tx).Save(ctx, state); txErr != nil {
			return txErr
		}

		return s.events.WithTx(tx).UpdateStatus(ctx, event.ID, enums.EventStatusBooked)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finalize event")
	}

	event.Status = enums.EventStatusBooked
	return &Result{Bookings: created, TotalCost: total.InexactFloat64(), Event: event}, nil
}

func (s *service) paymentReminders(event *models.Event, total decimal.Decimal) []models.CalendarEvent {
	description := fmt.Sprintf("Vendor payments for %s, total $%s", event.Name, total.StringFixed(2))
	reminders := []struct {
		title      string
		daysBefore int
	}{
		{"Payment Reminder - 1 Week", 7},
		{"Payment Reminder - 3 Days", 3},
		{"Final Payment Due Tomorrow", 1},
	}

	entries := make([]models.CalendarEvent, 0, len(reminders))
	eventID := event.ID
	for _, reminder := range reminders {
		entries = append(entries, models.CalendarEvent{
			UserID:      event.OwnerID,
			Title:       reminder.title,
			Description: description,
			EventType:   enums.CalendarEventTypePaymentDeadline,
			Date:        event.Date.AddDate(0, 0, -reminder.daysBefore),
			AllDay:      true,
			RelatedID:   &eventID,
		})
	}
	return entries
}

func newInvoiceID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("INV-%d", time.Now().UnixNano())
	}
	return "INV-" + hex.EncodeToString(buf)
}
