// internals/features/courses/courses/service/lifecycle_service.go
//
// Seluruh percabangan role untuk status kursus dikonsolidasi di sini sebagai
// fungsi murni, supaya bisa dites tanpa persistence. Controller hanya memanggil
// ApplyTransition / ApplyApproval lalu menulis hasilnya dalam satu transaksi.
package service

import (
	"errors"
	"fmt"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/courses/courses/model"
)

// AdminEditReapproves: kebijakan eksplisit. Admin yang mengedit kursus
// (publish, approved) tanpa mengirim approval_status dianggap me-re-approve.
// Untuk instructor, status approved justru dipertahankan apa adanya.
const AdminEditReapproves = true

// LifecycleState: triple (status, approval_status, is_active) yang dipersist.
type LifecycleState struct {
	Status         string
	ApprovalStatus *string
	IsActive       bool
}

// LifecycleRequest: field lifecycle yang dikirim caller. nil = tidak diubah.
type LifecycleRequest struct {
	Status         *string
	ApprovalStatus *string // hanya admin
	IsActive       *bool   // hanya admin
}

func approvalPtr(s string) *string { return &s }

// ValidateState menolak kombinasi (status, approval_status) di luar 4 pasangan valid.
// Tidak pernah ada koersi diam-diam.
func ValidateState(s LifecycleState) error {
	approval := ""
	if s.ApprovalStatus != nil {
		approval = *s.ApprovalStatus
	}

	switch {
	case s.Status == model.CourseStatusDraft && approval == "":
	case s.Status == model.CourseStatusPending && approval == "":
	case s.Status == model.CourseStatusPublish && approval == model.CourseApprovalApproved:
	case s.Status == model.CourseStatusDraft && approval == model.CourseApprovalRejected:
	default:
		return fmt.Errorf("kombinasi status '%s' dan approval_status '%s' tidak valid", s.Status, approval)
	}

	// is_active hanya boleh true untuk kursus publish+approved
	// (admin yang set langsung tetap melewati jalur publish+approved).
	if s.IsActive && !(s.Status == model.CourseStatusPublish && approval == model.CourseApprovalApproved) {
		return errors.New("kursus belum publish+approved, is_active tidak boleh true")
	}
	return nil
}

// ApplyTransition menghitung state lifecycle berikutnya berdasarkan role actor.
//
// Instructor:
//   - minta publish & belum pernah approved → (pending, nil, false) menunggu review
//   - sedang (publish, approved) → edit diterima, lifecycle TIDAK berubah
//     (instructor tidak bisa menurunkan/memicu ulang review sendiri)
//   - minta draft & belum pernah approved → (draft, nil, false)
//   - mengirim approval_status / is_active → ditolak (kapabilitas admin)
//
// Admin:
//   - boleh set draft atau publish; publish otomatis approved
//   - approval_status eksplisit diterima (approved/rejected)
//   - is_active mengikuti flag yang dikirim admin, bukan aturan turunan
func ApplyTransition(cur LifecycleState, actorRole string, req LifecycleRequest) (LifecycleState, error) {
	switch actorRole {
	case constants.RoleAdmin:
		return applyAdminTransition(cur, req)
	case constants.RoleInstructor:
		return applyInstructorTransition(cur, req)
	default:
		return LifecycleState{}, fmt.Errorf("role '%s' tidak boleh mengubah lifecycle kursus", actorRole)
	}
}

func applyInstructorTransition(cur LifecycleState, req LifecycleRequest) (LifecycleState, error) {
	if req.ApprovalStatus != nil {
		return LifecycleState{}, errors.New("approval_status hanya boleh diubah oleh admin")
	}
	if req.IsActive != nil {
		return LifecycleState{}, errors.New("is_active hanya boleh di-set langsung oleh admin")
	}

	// Sekali publish+approved, hanya aksi admin yang mengubah lifecycle.
	if cur.Status == model.CourseStatusPublish && ptrEq(cur.ApprovalStatus, model.CourseApprovalApproved) {
		return cur, nil
	}

	if req.Status == nil {
		return cur, nil
	}

	switch *req.Status {
	case model.CourseStatusPublish:
		// belum pernah approved → masuk antrian review
		return LifecycleState{Status: model.CourseStatusPending, ApprovalStatus: nil, IsActive: false}, nil
	case model.CourseStatusDraft:
		return LifecycleState{Status: model.CourseStatusDraft, ApprovalStatus: nil, IsActive: false}, nil
	case model.CourseStatusPending:
		return LifecycleState{}, errors.New("status 'pending' hanya bisa dicapai lewat pengajuan publish")
	default:
		return LifecycleState{}, fmt.Errorf("status '%s' tidak dikenal", *req.Status)
	}
}

func applyAdminTransition(cur LifecycleState, req LifecycleRequest) (LifecycleState, error) {
	next := cur

	if req.Status != nil {
		switch *req.Status {
		case model.CourseStatusDraft:
			next.Status = model.CourseStatusDraft
			next.ApprovalStatus = nil
		case model.CourseStatusPublish:
			next.Status = model.CourseStatusPublish
			next.ApprovalStatus = approvalPtr(model.CourseApprovalApproved)
		case model.CourseStatusPending:
			return LifecycleState{}, errors.New("admin tidak menaruh kursus ke 'pending' secara langsung")
		default:
			return LifecycleState{}, fmt.Errorf("status '%s' tidak dikenal", *req.Status)
		}
	} else if AdminEditReapproves &&
		cur.Status == model.CourseStatusPublish && ptrEq(cur.ApprovalStatus, model.CourseApprovalApproved) {
		next.ApprovalStatus = approvalPtr(model.CourseApprovalApproved)
	}

	if req.ApprovalStatus != nil {
		switch *req.ApprovalStatus {
		case model.CourseApprovalApproved:
			next.Status = model.CourseStatusPublish
			next.ApprovalStatus = approvalPtr(model.CourseApprovalApproved)
		case model.CourseApprovalRejected:
			next.Status = model.CourseStatusDraft
			next.ApprovalStatus = approvalPtr(model.CourseApprovalRejected)
		default:
			return LifecycleState{}, fmt.Errorf("approval_status '%s' tidak dikenal", *req.ApprovalStatus)
		}
	}

	// is_active mengikuti flag admin; default-nya turunan publish+approved
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	} else {
		next.IsActive = next.Status == model.CourseStatusPublish && ptrEq(next.ApprovalStatus, model.CourseApprovalApproved)
	}

	if err := ValidateState(next); err != nil {
		return LifecycleState{}, err
	}
	return next, nil
}

// ApplyApproval: endpoint approve/reject milik admin (terpisah dari create/edit).
// approve=true → (publish, approved, aktif); approve=false → (draft, rejected, nonaktif).
func ApplyApproval(approve bool) LifecycleState {
	if approve {
		return LifecycleState{
			Status:         model.CourseStatusPublish,
			ApprovalStatus: approvalPtr(model.CourseApprovalApproved),
			IsActive:       true,
		}
	}
	return LifecycleState{
		Status:         model.CourseStatusDraft,
		ApprovalStatus: approvalPtr(model.CourseApprovalRejected),
		IsActive:       false,
	}
}

// ValidatePricing: diskon tidak boleh sama dengan harga untuk kursus berbayar.
// Dicek sebelum penulisan lifecycle apa pun; gagal = seluruh operasi batal.
func ValidatePricing(courseType string, price float64, discount *float64) error {
	if courseType != model.CourseTypePaid || discount == nil {
		return nil
	}
	if *discount == price {
		return errors.New("harga diskon tidak boleh sama dengan harga normal")
	}
	if *discount > price {
		return errors.New("harga diskon tidak boleh melebihi harga normal")
	}
	return nil
}

// StateOf membaca triple lifecycle dari model.
func StateOf(m *model.CourseModel) LifecycleState {
	return LifecycleState{
		Status:         m.CourseStatus,
		ApprovalStatus: m.CourseApprovalStatus,
		IsActive:       m.CourseIsActive,
	}
}

// WriteState menulis triple lifecycle kembali ke model.
func WriteState(m *model.CourseModel, s LifecycleState) {
	m.CourseStatus = s.Status
	m.CourseApprovalStatus = s.ApprovalStatus
	m.CourseIsActive = s.IsActive
}

func ptrEq(p *string, v string) bool {
	return p != nil && *p == v
}
