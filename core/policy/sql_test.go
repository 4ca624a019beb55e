package policy

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := postgres.New(postgres.Config{
		Conn: db,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestSQLClient_EnableRowLevelSecurity(t *testing.T) {
	db, mock := setupMockDB(t)
	client := NewSQLClient(db)

	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE "storage"."objects" ENABLE ROW LEVEL SECURITY`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.EnableRowLevelSecurity(context.Background(), "storage", "objects")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLClient_CreatePolicy(t *testing.T) {
	stmt := `CREATE POLICY "Public select images" ON "storage"."objects" FOR SELECT TO public USING (bucket_id = 'images')`

	t.Run("Created", func(t *testing.T) {
		db, mock := setupMockDB(t)
		client := NewSQLClient(db)

		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, client.CreatePolicy(context.Background(), "images", "Public select images", stmt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate", func(t *testing.T) {
		db, mock := setupMockDB(t)
		client := NewSQLClient(db)

		mock.ExpectExec(regexp.QuoteMeta(stmt)).
			WillReturnError(errors.New(`ERROR: policy "Public select images" for table "objects" already exists (SQLSTATE 42710)`))

		err := client.CreatePolicy(context.Background(), "images", "Public select images", stmt)
		require.Error(t, err)
		assert.True(t, IsAlreadyExists(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
