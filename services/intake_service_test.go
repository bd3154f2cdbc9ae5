package services

import (
	"testing"
	"time"

	"github.com/iffanyt/ChugCheck/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIntakeThenGet(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	today := time.Now()

	require.NoError(t, RecordIntake(user.ID, today, 8))

	got, err := GetIntake(user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestRecordIntakeOverwritesNotAccumulates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	today := time.Now()

	// quick-add callers pass the running total, so a later write
	// replaces the earlier one
	require.NoError(t, RecordIntake(user.ID, today, 8))
	require.NoError(t, RecordIntake(user.ID, today, 16))

	got, err := GetIntake(user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	var count int64
	require.NoError(t, db.Model(&models.IntakeRecord{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "one row per user per day")
}

func TestGetIntakeAbsentDayIsZero(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	got, err := GetIntake(user.ID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestResetIntakeEqualsRecordZero(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	today := time.Now()

	require.NoError(t, RecordIntake(user.ID, today, 32))
	require.NoError(t, ResetIntake(user.ID, today))

	got, err := GetIntake(user.ID, today)
	require.NoError(t, err)
	assert.Zero(t, got)

	// the row is zeroed, not deleted
	var count int64
	require.NoError(t, db.Model(&models.IntakeRecord{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordIntakeRejectsNegative(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	err := RecordIntake(user.ID, time.Now(), -4)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestQueryRangeIsSparseAndInclusive(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, RecordIntake(user.ID, base, 40))
	require.NoError(t, RecordIntake(user.ID, base.AddDate(0, 0, 2), 64))
	// day 11 never logged, day 13 outside the range
	require.NoError(t, RecordIntake(user.ID, base.AddDate(0, 0, 3), 12))

	got, err := QueryRange(user.ID, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 40, got[dayStartLocal(base)])
	assert.Equal(t, 64, got[dayStartLocal(base.AddDate(0, 0, 2))])
	_, present := got[dayStartLocal(base.AddDate(0, 0, 1))]
	assert.False(t, present, "unlogged days are absent, never zero")
}

func TestQueryRangeScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	other := &models.User{UserID: "other1", Email: "other@example.com", Password: "x"}
	require.NoError(t, db.Create(other).Error)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	require.NoError(t, RecordIntake(user.ID, day, 40))
	require.NoError(t, RecordIntake(other.ID, day, 99))

	got, err := QueryRange(user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 40, got[day])
}
