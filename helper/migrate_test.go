package helper_test

import (
	"shareit/config"
	"shareit/helper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{
			name: "no prefix",
			want: "postgres://app:secret@db:5432/shareit?sslmode=disable&x-migrations-table=schema_migrations",
		},
		{
			name:   "prefixed database",
			prefix: "test_",
			want:   "postgres://app:secret@db:5432/test_shareit?sslmode=disable&x-migrations-table=schema_migrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.DB.Postgres.Prefix = tt.prefix
			cfg.DB.Postgres.MigrationTable = "schema_migrations"
			cfg.DB.Postgres.Write.Username = "app"
			cfg.DB.Postgres.Write.Password = "secret"
			cfg.DB.Postgres.Write.Host = "db"
			cfg.DB.Postgres.Write.Port = "5432"
			cfg.DB.Postgres.Write.Name = "shareit"
			cfg.DB.Postgres.Write.SSLMode = "disable"

			assert.Equal(t, tt.want, helper.ConnectionString(cfg))
		})
	}
}
