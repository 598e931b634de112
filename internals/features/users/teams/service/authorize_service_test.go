package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/teams/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(&model.TeamMembershipModel{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestCanModifyCourse_OwnerAlwaysAllowed(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()

	ok, err := CanModifyCourse(db, owner, owner)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanModifyCourse_ApprovedMemberAllowed(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	member := uuid.New()

	require.NoError(t, db.Create(&model.TeamMembershipModel{
		TeamMembershipInstructorID: owner,
		TeamMembershipUserID:       member,
		TeamMembershipStatus:       model.TeamMembershipStatusApproved,
	}).Error)

	ok, err := CanModifyCourse(db, member, owner)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanModifyCourse_PendingMemberDenied(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	member := uuid.New()

	require.NoError(t, db.Create(&model.TeamMembershipModel{
		TeamMembershipInstructorID: owner,
		TeamMembershipUserID:       member,
		TeamMembershipStatus:       model.TeamMembershipStatusPending,
	}).Error)

	ok, err := CanModifyCourse(db, member, owner)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanModifyCourse_SoftDeletedMembershipDenied(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	member := uuid.New()

	m := model.TeamMembershipModel{
		TeamMembershipInstructorID: owner,
		TeamMembershipUserID:       member,
		TeamMembershipStatus:       model.TeamMembershipStatusApproved,
	}
	require.NoError(t, db.Create(&m).Error)
	require.NoError(t, db.Delete(&m).Error)

	ok, err := CanModifyCourse(db, member, owner)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanModifyCourse_StrangerDenied(t *testing.T) {
	db := newTestDB(t)

	ok, err := CanModifyCourse(db, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.False(t, ok)
}
