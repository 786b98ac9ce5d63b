package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// BookingRepository persists vendor bookings and their payments.
type BookingRepository interface {
	WithTx(tx *gorm.DB) BookingRepository
	Create(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorBooking, error)
	Save(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.VendorBooking, error)
}

// PaymentRepository persists payment records.
type PaymentRepository interface {
	WithTx(tx *gorm.DB) PaymentRepository
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Payment, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error)
}

// Repository is the gorm-backed booking store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a booking repository on the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) BookingRepository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorBooking, error) {
	var booking models.VendorBooking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *Repository) Save(ctx context.Context, booking *models.VendorBooking) (*models.VendorBooking, error) {
	if err := r.db.WithContext(ctx).Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *Repository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.VendorBooking, error) {
	var bookings []models.VendorBooking
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// PaymentStore is the gorm-backed payment store.
type PaymentStore struct {
	db *gorm.DB
}

// NewPaymentStore builds a payment repository on the given DB handle.
func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

// WithTx returns a store bound to the given transaction.
func (s *PaymentStore) WithTx(tx *gorm.DB) PaymentRepository {
	return &PaymentStore{db: tx}
}

func (s *PaymentStore) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
