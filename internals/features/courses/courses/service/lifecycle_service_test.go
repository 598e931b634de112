package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/courses/courses/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestValidateState_OnlyFourCombinationsAllowed(t *testing.T) {
	valid := []LifecycleState{
		{Status: model.CourseStatusDraft},
		{Status: model.CourseStatusPending},
		{Status: model.CourseStatusPublish, ApprovalStatus: strPtr(model.CourseApprovalApproved)},
		{Status: model.CourseStatusDraft, ApprovalStatus: strPtr(model.CourseApprovalRejected)},
	}
	for _, s := range valid {
		require.NoError(t, ValidateState(s), "state %+v harus valid", s)
	}

	invalid := []LifecycleState{
		{Status: model.CourseStatusPublish},                                                          // publish tanpa approval
		{Status: model.CourseStatusPublish, ApprovalStatus: strPtr(model.CourseApprovalRejected)},    // publish+rejected
		{Status: model.CourseStatusPending, ApprovalStatus: strPtr(model.CourseApprovalApproved)},    // pending+approved
		{Status: model.CourseStatusPending, ApprovalStatus: strPtr(model.CourseApprovalRejected)},    // pending+rejected
		{Status: "archived"},                                                                         // status asing
		{Status: model.CourseStatusDraft, IsActive: true},                                            // aktif tapi draft
		{Status: model.CourseStatusPending, IsActive: true},                                          // aktif tapi pending
	}
	for _, s := range invalid {
		require.Error(t, ValidateState(s), "state %+v harus ditolak", s)
	}
}

func TestInstructorPublishRequestGoesToPending(t *testing.T) {
	cur := LifecycleState{Status: model.CourseStatusDraft}

	next, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusPublish),
	})
	require.NoError(t, err)
	require.Equal(t, model.CourseStatusPending, next.Status)
	require.Nil(t, next.ApprovalStatus)
	require.False(t, next.IsActive)
}

func TestInstructorCannotUnpublishApprovedCourse(t *testing.T) {
	cur := LifecycleState{
		Status:         model.CourseStatusPublish,
		ApprovalStatus: strPtr(model.CourseApprovalApproved),
		IsActive:       true,
	}

	// edit biasa minta publish lagi → lifecycle tidak berubah
	next, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusPublish),
	})
	require.NoError(t, err)
	require.Equal(t, cur, next)

	// minta draft pun lifecycle tetap dipertahankan
	next, err = ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusDraft),
	})
	require.NoError(t, err)
	require.Equal(t, cur, next)
}

func TestInstructorDraftRequestClearsRejection(t *testing.T) {
	cur := LifecycleState{
		Status:         model.CourseStatusDraft,
		ApprovalStatus: strPtr(model.CourseApprovalRejected),
	}

	next, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusDraft),
	})
	require.NoError(t, err)
	require.Equal(t, model.CourseStatusDraft, next.Status)
	require.Nil(t, next.ApprovalStatus)
}

func TestInstructorCannotTouchAdminFields(t *testing.T) {
	cur := LifecycleState{Status: model.CourseStatusDraft}

	_, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		ApprovalStatus: strPtr(model.CourseApprovalApproved),
	})
	require.Error(t, err)

	_, err = ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		IsActive: boolPtr(true),
	})
	require.Error(t, err)
}

func TestInstructorCannotRequestPendingDirectly(t *testing.T) {
	cur := LifecycleState{Status: model.CourseStatusDraft}

	_, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusPending),
	})
	require.Error(t, err)
}

func TestAdminPublishIsAutoApproved(t *testing.T) {
	cur := LifecycleState{Status: model.CourseStatusDraft}

	next, err := ApplyTransition(cur, constants.RoleAdmin, LifecycleRequest{
		Status: strPtr(model.CourseStatusPublish),
	})
	require.NoError(t, err)
	require.Equal(t, model.CourseStatusPublish, next.Status)
	require.NotNil(t, next.ApprovalStatus)
	require.Equal(t, model.CourseApprovalApproved, *next.ApprovalStatus)
	require.True(t, next.IsActive) // turunan publish+approved
}

func TestAdminIsActiveFollowsExplicitFlag(t *testing.T) {
	cur := LifecycleState{Status: model.CourseStatusDraft}

	next, err := ApplyTransition(cur, constants.RoleAdmin, LifecycleRequest{
		Status:   strPtr(model.CourseStatusPublish),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	require.False(t, next.IsActive)
}

func TestAdminExplicitRejectForcesDraft(t *testing.T) {
	cur := LifecycleState{
		Status:         model.CourseStatusPublish,
		ApprovalStatus: strPtr(model.CourseApprovalApproved),
		IsActive:       true,
	}

	next, err := ApplyTransition(cur, constants.RoleAdmin, LifecycleRequest{
		ApprovalStatus: strPtr(model.CourseApprovalRejected),
	})
	require.NoError(t, err)
	require.Equal(t, model.CourseStatusDraft, next.Status)
	require.Equal(t, model.CourseApprovalRejected, *next.ApprovalStatus)
	require.False(t, next.IsActive)
}

func TestAdminEditReapprovesPublishedCourse(t *testing.T) {
	// kebijakan AdminEditReapproves: edit admin tanpa field lifecycle
	// pada kursus publish+approved tetap approved (dan aktif secara turunan)
	cur := LifecycleState{
		Status:         model.CourseStatusPublish,
		ApprovalStatus: strPtr(model.CourseApprovalApproved),
		IsActive:       true,
	}

	next, err := ApplyTransition(cur, constants.RoleAdmin, LifecycleRequest{})
	require.NoError(t, err)
	require.Equal(t, model.CourseStatusPublish, next.Status)
	require.Equal(t, model.CourseApprovalApproved, *next.ApprovalStatus)
	require.True(t, next.IsActive)
}

func TestApplyApproval(t *testing.T) {
	approved := ApplyApproval(true)
	require.Equal(t, model.CourseStatusPublish, approved.Status)
	require.Equal(t, model.CourseApprovalApproved, *approved.ApprovalStatus)
	require.True(t, approved.IsActive)

	rejected := ApplyApproval(false)
	require.Equal(t, model.CourseStatusDraft, rejected.Status)
	require.Equal(t, model.CourseApprovalRejected, *rejected.ApprovalStatus)
	require.False(t, rejected.IsActive)

	require.NoError(t, ValidateState(approved))
	require.NoError(t, ValidateState(rejected))
}

func TestApprovalScenario_DraftToPendingToPublished(t *testing.T) {
	// Skenario: instructor submit publish → pending; admin approve → publish;
	// edit instructor berikutnya tanpa status → lifecycle tidak berubah.
	cur := LifecycleState{Status: model.CourseStatusDraft}

	afterSubmit, err := ApplyTransition(cur, constants.RoleInstructor, LifecycleRequest{
		Status: strPtr(model.CourseStatusPublish),
	})
	require.NoError(t, err)
	require.Equal(t, LifecycleState{Status: model.CourseStatusPending}, afterSubmit)

	afterApprove := ApplyApproval(true)
	require.True(t, afterApprove.IsActive)

	afterEdit, err := ApplyTransition(afterApprove, constants.RoleInstructor, LifecycleRequest{})
	require.NoError(t, err)
	require.Equal(t, afterApprove, afterEdit)
}

func TestValidatePricing(t *testing.T) {
	d := 100.0
	require.Error(t, ValidatePricing(model.CourseTypePaid, 100, &d))   // diskon == harga
	require.Error(t, ValidatePricing(model.CourseTypePaid, 50, &d))    // diskon > harga
	require.NoError(t, ValidatePricing(model.CourseTypePaid, 200, &d)) // diskon wajar
	require.NoError(t, ValidatePricing(model.CourseTypeFree, 100, &d)) // gratis, diskon diabaikan
	require.NoError(t, ValidatePricing(model.CourseTypePaid, 100, nil))
}
