package calendar

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

func setupCalendarTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CalendarEvent{}))
	return db
}

func TestRepositoryListDueUnsent(t *testing.T) {
	db := setupCalendarTestDB(t)
	repo := NewRepository(db)

	now := time.Now().UTC()
	userID := uuid.New()
	entries := []models.CalendarEvent{
		{UserID: userID, Title: "due", EventType: enums.CalendarEventTypePaymentDeadline, Date: now.Add(-time.Hour)},
		{UserID: userID, Title: "future", EventType: enums.CalendarEventTypePaymentDeadline, Date: now.Add(48 * time.Hour)},
		{UserID: userID, Title: "already sent", EventType: enums.CalendarEventTypeReminder, Date: now.Add(-time.Hour), NotificationSent: true},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), entries))

	due, err := repo.ListDueUnsent(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].Title)

	require.NoError(t, repo.MarkNotified(context.Background(), due[0].ID))

	due, err = repo.ListDueUnsent(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestRepositoryListByUserOrdersByDate(t *testing.T) {
	db := setupCalendarTestDB(t)
	repo := NewRepository(db)

	userID := uuid.New()
	later := models.CalendarEvent{UserID: userID, Title: "later", EventType: enums.CalendarEventTypeEventDate, Date: time.Now().Add(72 * time.Hour)}
	sooner := models.CalendarEvent{UserID: userID, Title: "sooner", EventType: enums.CalendarEventTypeAppointment, Date: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateBatch(context.Background(), []models.CalendarEvent{later, sooner}))

	rows, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "sooner", rows[0].Title)
	assert.Equal(t, "later", rows[1].Title)
}
