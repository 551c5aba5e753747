//go:build integration

package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"shareit/infras/otel/mocks"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDatabase = "shareit"
)

var migrationFile = filepath.Join("..", "..", "..", "..", "migrations", "postgres", "000001_init.up.sql")

// startPostgres runs a throwaway postgres and returns a connection whose session zone
// differs from the stored UTC instants.
func startPostgres(t *testing.T, timezone string) *postgres.Connection {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDatabase,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db := postgres.CreatePostgresConnection("integration", testUser, testPassword, host, port.Port(), testDatabase, "disable", timezone, 5, 1)
	require.NotNil(t, db)

	conn := &postgres.Connection{Read: db, Write: db}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	schema, err := os.ReadFile(migrationFile)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	return conn
}

func seedItem(t *testing.T, conn *postgres.Connection) (ownerID, bookerID, itemID int64) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, conn.Write.GetContext(ctx, &ownerID, "INSERT INTO users (name, email) VALUES ('Owner', 'owner@mail.test') RETURNING id"))
	require.NoError(t, conn.Write.GetContext(ctx, &bookerID, "INSERT INTO users (name, email) VALUES ('Booker', 'booker@mail.test') RETURNING id"))
	require.NoError(t, conn.Write.GetContext(ctx, &itemID,
		"INSERT INTO items (name, description, available, owner_id) VALUES ('Drill', 'Cordless', TRUE, $1) RETURNING id", ownerID))

	return ownerID, bookerID, itemID
}

func TestBookingRepositoryAgainstPostgres(t *testing.T) {
	conn := startPostgres(t, "Asia/Jakarta")
	repo := repository.New(conn, mocks.NewOtel())
	ownerID, bookerID, itemID := seedItem(t, conn)
	ctx := context.Background()

	jakarta := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, jakarta)

	insert := func(start time.Time, status model.Status) int64 {
		id, err := repo.InsertReturningID(ctx, model.Booking{
			Start:    start,
			End:      start.Add(2 * time.Hour),
			ItemID:   itemID,
			BookerID: bookerID,
			Status:   status,
			Metadata: gModel.NewMetadata(now, "test"),
		})
		require.NoError(t, err)

		return id
	}

	finished := insert(now.Add(-48*time.Hour), model.StatusApproved)
	last := insert(now.Add(-time.Hour), model.StatusApproved)
	next := insert(now.Add(3*time.Hour), model.StatusApproved)
	waiting := insert(now.Add(time.Hour), model.StatusWaiting)

	t.Run("instants survive a non-utc round-trip", func(t *testing.T) {
		got, err := repo.Get(ctx, gDto.FilterGroup{Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: next, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		}})
		require.NoError(t, err)

		assert.True(t, got.Start.Equal(now.Add(3*time.Hour)), "start %s", got.Start)
		assert.True(t, got.End.Equal(now.Add(5*time.Hour)), "end %s", got.End)
		assert.Equal(t, "Drill", got.ItemName)
		assert.Equal(t, ownerID, got.ItemOwnerID)

		var sameInstant bool
		require.NoError(t, conn.Read.GetContext(ctx, &sameInstant,
			"SELECT start_date = $1 FROM bookings WHERE id = $2", now.Add(3*time.Hour).UTC(), next))
		assert.True(t, sameInstant)
	})

	t.Run("nearest picks approved bookings around now", func(t *testing.T) {
		bookings, err := repo.GetNearest(ctx, []int64{itemID}, now)
		require.NoError(t, err)

		ids := make([]int64, 0, len(bookings))
		for _, b := range bookings {
			ids = append(ids, b.ID)
		}

		assert.ElementsMatch(t, []int64{last, next}, ids)
		assert.NotContains(t, ids, finished)
		assert.NotContains(t, ids, waiting)
	})

	t.Run("finished booking unlocks comments for the booker only", func(t *testing.T) {
		ok, err := repo.HasFinished(ctx, bookerID, itemID, now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.HasFinished(ctx, ownerID, itemID, now)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.HasFinished(ctx, bookerID, itemID, now.Add(-72*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("status moves out of waiting once", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, waiting, model.StatusApproved, "owner", now)
		require.NoError(t, err)
		assert.True(t, updated)

		updated, err = repo.UpdateStatus(ctx, waiting, model.StatusRejected, "owner", now)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}
