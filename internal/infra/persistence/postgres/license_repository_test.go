package postgres

import (
	"context"
	"testing"
	"time"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/repository"
	"keygate/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLicensePatchColumns(t *testing.T) {
	name := "Acme"
	empty := ""
	inactive := false
	expiresAt := time.Date(2027, 1, 1, 0, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))

	tests := []struct {
		name  string
		patch *entity.LicensePatch
		want  map[string]any
	}{
		{
			name:  "nil patch",
			patch: nil,
			want:  map[string]any{},
		},
		{
			name:  "name and revoke",
			patch: &entity.LicensePatch{ClientName: &name, IsActive: &inactive},
			want:  map[string]any{"client_name": "Acme", "is_active": false},
		},
		{
			name:  "empty optional string clears column",
			patch: &entity.LicensePatch{Email: &empty, Description: &empty},
			want:  map[string]any{"email": nil, "description": nil},
		},
		{
			name:  "expiry stored in UTC",
			patch: &entity.LicensePatch{ExpiresAt: &expiresAt},
			want:  map[string]any{"expires_at": expiresAt.UTC()},
		},
		{
			name:  "clear wins over new expiry",
			patch: &entity.LicensePatch{ExpiresAt: &expiresAt, ClearExpiresAt: true},
			want:  map[string]any{"expires_at": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, licensePatchColumns(tt.patch))
		})
	}
}

func TestLicenseMapping_RoundTrip(t *testing.T) {
	email := "ops@acme.test"
	expiresAt := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	license := &entity.License{
		ID:         4,
		Key:        "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		ClientName: "Acme",
		Email:      &email,
		IsActive:   true,
		ExpiresAt:  &expiresAt,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, license, toLicenseDomain(fromLicenseDomain(license)))
	assert.Nil(t, toLicenseDomain((*model.LicenseModel)(nil)))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "key" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset")))
}

func TestLicenseRepository_ListNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	newer := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "licenses" ORDER BY created_at DESC,id DESC`).
		WillReturnRows(licenseRows().
			AddRow(int64(2), "key-2", "Newer", true, newer).
			AddRow(int64(1), "key-1", "Older", false, older))

	licenses, err := NewLicenseRepository(db).List(context.Background())

	require.NoError(t, err)
	require.Len(t, licenses, 2)
	assert.Equal(t, int64(2), licenses[0].ID)
	assert.Equal(t, newer, licenses[0].CreatedAt)
	assert.Equal(t, int64(1), licenses[1].ID)
	assert.False(t, licenses[1].IsActive)
}

func TestLicenseRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("assigns id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "licenses"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectCommit()

		license := &entity.License{Key: "key-11", ClientName: "Acme", IsActive: true, CreatedAt: createdAt}
		require.NoError(t, NewLicenseRepository(db).Create(ctx, license))

		assert.Equal(t, int64(11), license.ID)
		assert.Equal(t, createdAt, license.CreatedAt)
	})

	t.Run("unique violation becomes duplicate key", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "licenses"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_licenses_key"})
		mock.ExpectRollback()

		license := &entity.License{Key: "taken", ClientName: "Acme", IsActive: true, CreatedAt: createdAt}
		err := NewLicenseRepository(db).Create(ctx, license)

		assert.ErrorIs(t, err, repository.ErrDuplicateLicenseKey)
		assert.Zero(t, license.ID)
	})

	t.Run("duplicate inside a transaction rolls back to a savepoint", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`^SAVEPOINT sp\d+`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`INSERT INTO "licenses"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
		mock.ExpectExec(`^ROLLBACK TO SAVEPOINT sp\d+`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`^SAVEPOINT sp\d+`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`INSERT INTO "licenses"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
		mock.ExpectCommit()

		retried := &entity.License{Key: "fresh", ClientName: "Acme", IsActive: true, CreatedAt: createdAt}
		err := NewTransactionManager(db).Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			licenseRepo := repoFactory.NewLicenseRepository()

			err := licenseRepo.Create(ctx, &entity.License{Key: "taken", ClientName: "Acme", IsActive: true, CreatedAt: createdAt})
			require.ErrorIs(t, err, repository.ErrDuplicateLicenseKey)

			return licenseRepo.Create(ctx, retried)
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12), retried.ID)
	})
}

func TestLicenseRepository_DeleteThenFind(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewLicenseRepository(db)

	mock.ExpectExec(`DELETE FROM "licenses" WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE id = \$1`).
		WillReturnRows(licenseRows())
	mock.ExpectExec(`DELETE FROM "licenses" WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(ctx, 5))

	license, err := repo.FindByID(ctx, 5)
	assert.ErrorIs(t, err, repository.ErrLicenseNotFound)
	assert.Nil(t, license)

	assert.NoError(t, repo.Delete(ctx, 5), "deleting an absent license is not an error")
}

func TestLicenseRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	inactive := false

	mock.ExpectExec(`UPDATE "licenses" SET "is_active"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	license, err := NewLicenseRepository(db).Update(context.Background(), 404, &entity.LicensePatch{IsActive: &inactive})

	assert.ErrorIs(t, err, repository.ErrLicenseNotFound)
	assert.Nil(t, license)
}
