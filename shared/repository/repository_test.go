package repository_test

import (
	"context"
	"errors"
	"fmt"
	"shareit/infras/otel/mocks"
	gModel "shareit/shared/model"
	"shareit/shared/repository"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type loan struct {
	ID        int64     `db:"id"`
	ItemID    int64     `db:"item_id"`
	StartDate time.Time `db:"start_date"`
	ItemName  string    `column:"name"     db:"item_name" table:"items"`
	gModel.Metadata
}

func (loan) GetJoinQuery() string {
	return "JOIN items ON items.id = loans.item_id"
}

type plain struct {
	ID   int64  `db:"id"`
	Note string `db:"note"`
}

func TestNewRepository_Columns(t *testing.T) {
	repo := repository.NewRepository[loan]("loan", "loans", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "item_id", "start_date", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
	assert.Equal(t,
		"loans.id, loans.item_id, loans.start_date, items.name AS item_name, loans.created_at, loans.modified_at, loans.created_by, loans.modified_by",
		repo.SelectClause(context.Background()),
	)
	assert.Equal(t, "loans.id, items.name AS item_name", repo.SelectClause(context.Background(), "id", "name"))
	assert.Equal(t, "loans JOIN items ON items.id = loans.item_id", repo.FromClause())
}

func TestNewRepository_WithoutJoin(t *testing.T) {
	repo := repository.NewRepository[plain]("plain", "plains", "id", nil, mocks.NewOtel())

	assert.Equal(t, "plains", repo.FromClause())
	assert.Equal(t, []string{"id", "note"}, repo.InsertColumns)
}

func TestIsUniqueViolation(t *testing.T) {
	unique := fmt.Errorf("failed to insert data (user): %w", &pq.Error{Code: "23505"})
	foreign := fmt.Errorf("failed to insert data (item): %w", &pq.Error{Code: "23503"})

	assert.True(t, repository.IsUniqueViolation(unique))
	assert.False(t, repository.IsUniqueViolation(foreign))
	assert.False(t, repository.IsUniqueViolation(errors.New("timeout")))

	assert.True(t, repository.IsForeignKeyViolation(foreign))
	assert.False(t, repository.IsForeignKeyViolation(unique))
}
