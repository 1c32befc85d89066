package postgres

import (
	"context"
	"testing"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Get(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "settings" ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		settings, err := NewSettingsRepository(db).Get(context.Background())

		assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
		assert.Nil(t, settings)
	})

	t.Run("first row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "settings" ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "smtp_host", "smtp_port"}).
				AddRow(int64(1), "smtp.example.com", int64(587)))

		settings, err := NewSettingsRepository(db).Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(1), settings.ID)
		assert.Equal(t, "smtp.example.com", entity.Value(settings.SMTPHost))
		require.NotNil(t, settings.SMTPPort)
		assert.Equal(t, 587, *settings.SMTPPort)
	})
}

func TestSettingsRepository_Upsert(t *testing.T) {
	host := "smtp.example.com"

	t.Run("inserts the first row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "settings" ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		saved, err := NewSettingsRepository(db).Upsert(context.Background(), &entity.Settings{ID: 99, SMTPHost: &host})

		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		assert.Equal(t, host, entity.Value(saved.SMTPHost))
	})

	t.Run("updates the existing row in place", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "settings" ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "smtp_host"}).AddRow(int64(3), "old.example.com"))
		mock.ExpectExec(`UPDATE "settings" SET .+ WHERE .*"id" = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := NewSettingsRepository(db).Upsert(context.Background(), &entity.Settings{SMTPHost: &host})

		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
		assert.Equal(t, host, entity.Value(saved.SMTPHost))
	})
}
