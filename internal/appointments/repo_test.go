package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

func setupAppointmentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Appointment{}))
	return db
}

func TestRepositoryCreateDefaultsToRequested(t *testing.T) {
	db := setupAppointmentTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.Appointment{
		ClientID: uuid.New(),
		VendorID: uuid.New(),
		AppointmentType: enums.AppointmentTypeVirtual,
		Date:     time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enums.AppointmentStatusRequested, created.Status)
}

func TestRepositoryListForActorMatchesEitherParty(t *testing.T) {
	db := setupAppointmentTestDB(t)
	repo := NewRepository(db)

	client := uuid.New()
	vendor := uuid.New()
	seed := []models.Appointment{
		{ClientID: client, VendorID: uuid.New(), AppointmentType: enums.AppointmentTypePhone, Date: time.Now()},
		{ClientID: uuid.New(), VendorID: vendor, AppointmentType: enums.AppointmentTypePhone, Date: time.Now()},
		{ClientID: uuid.New(), VendorID: uuid.New(), AppointmentType: enums.AppointmentTypePhone, Date: time.Now()},
	}
	for i := range seed {
		_, err := repo.Create(context.Background(), &seed[i])
		require.NoError(t, err)
	}

	asClient, err := repo.ListForActor(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, asClient, 1)
	assert.Equal(t, client, asClient[0].ClientID)

	asVendor, err := repo.ListForActor(context.Background(), vendor)
	require.NoError(t, err)
	require.Len(t, asVendor, 1)
	assert.Equal(t, vendor, asVendor[0].VendorID)
}

func TestRepositoryListConfirmedByEvent(t *testing.T) {
	db := setupAppointmentTestDB(t)
	repo := NewRepository(db)

	eventID := uuid.New()
	confirmed := models.Appointment{
		ClientID:        uuid.New(),
		VendorID:        uuid.New(),
		EventID:         &eventID,
		AppointmentType: enums.AppointmentTypeInPerson,
		Status:          enums.AppointmentStatusConfirmed,
		ClientConfirmed: true,
		Date:            time.Now(),
	}
	pendingClient := confirmed
	pendingClient.ID = uuid.Nil
	pendingClient.ClientConfirmed = false
	otherEvent := uuid.New()
	foreign := confirmed
	foreign.ID = uuid.Nil
	foreign.EventID = &otherEvent

	for _, appointment := range []*models.Appointment{&confirmed, &pendingClient, &foreign} {
		saved := *appointment
		saved.Status = enums.AppointmentStatusRequested
		created, err := repo.Create(context.Background(), &saved)
		require.NoError(t, err)
		created.Status = appointment.Status
		created.ClientConfirmed = appointment.ClientConfirmed
		_, err = repo.Save(context.Background(), created)
		require.NoError(t, err)
	}

	matches, err := repo.ListConfirmedByEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, eventID, *matches[0].EventID)
	assert.True(t, matches[0].ClientConfirmed)
}
