// internal/database/connection_test.go
package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prodexhq/prodex-backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:dbpkg?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	require.NoError(t, db.Where("1 = 1").Delete(&models.Setting{}).Error)
	return db
}

func TestWithTransactionCommits(t *testing.T) {
	db := openTestDB(t)

	err := WithTransaction(db, func(tx *gorm.DB) error {
		return tx.Create(&models.Setting{SettingKey: "store_name", SettingValue: "Prodex"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Setting{SettingKey: "store_name", SettingValue: "Prodex"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	require.Zero(t, count)
}
