// internal/services/testing_test.go
package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prodexhq/prodex-backend/internal/models"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each call gets its own named database so suites never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared-cache memory db alive for the
	// test's lifetime.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Category{},
		&models.Order{},
		&models.Cart{},
		&models.CartItem{},
		&models.Setting{},
		&models.AuditLog{},
	))

	return db
}
