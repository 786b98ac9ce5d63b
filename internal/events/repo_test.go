package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

func setupEventsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Event{}))
	return db
}

func TestRepositoryCreateAssignsIDAndStatus(t *testing.T) {
	db := setupEventsTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.Event{
		OwnerID:        uuid.New(),
		Name:           "Summer Wedding",
		Date:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Budget:         10000,
		ServicesNeeded: pq.StringArray{"Catering", "Photography"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enums.EventStatusPlanning, created.Status)

	loaded, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Wedding", loaded.Name)
	assert.Equal(t, pq.StringArray{"Catering", "Photography"}, loaded.ServicesNeeded)
}

func TestRepositoryFindByIDAndOwnerScopesToOwner(t *testing.T) {
	db := setupEventsTestDB(t)
	repo := NewRepository(db)

	owner := uuid.New()
	created, err := repo.Create(context.Background(), &models.Event{
		OwnerID: owner,
		Name:    "Corporate Gala",
		Date:    time.Now().AddDate(0, 3, 0),
	})
	require.NoError(t, err)

	_, err = repo.FindByIDAndOwner(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	loaded, err := repo.FindByIDAndOwner(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db := setupEventsTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.Event{
		OwnerID: uuid.New(),
		Name:    "Gala",
		Date:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, enums.EventStatusBooked))

	loaded, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.EventStatusBooked, loaded.Status)
}
