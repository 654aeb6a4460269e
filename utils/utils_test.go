package utils_test

import (
	"iiacademy/database"
	"iiacademy/models"
	"iiacademy/utils"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGenerateTransactionIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := utils.GenerateTransactionID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestGenerateResetCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, utils.GenerateResetCode())
	}
}

func TestPurgeDeadResetCodes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.PasswordResetCode{}))
	database.Database = database.DbInstance{Db: db}

	live := models.PasswordResetCode{UserID: 1, Email: "a@x.com", Code: "111111", ExpiresAt: time.Now().Add(10 * time.Minute)}
	used := models.PasswordResetCode{UserID: 1, Email: "a@x.com", Code: "222222", ExpiresAt: time.Now().Add(10 * time.Minute), IsUsed: true}
	expired := models.PasswordResetCode{UserID: 1, Email: "a@x.com", Code: "333333", ExpiresAt: time.Now().Add(-1 * time.Minute)}
	require.NoError(t, db.Create(&live).Error)
	require.NoError(t, db.Create(&used).Error)
	require.NoError(t, db.Create(&expired).Error)

	utils.PurgeDeadResetCodes()

	var remaining []models.PasswordResetCode
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "111111", remaining[0].Code)
}
