package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	"kursusku_backend/internals/features/curriculum/documents/dto"
	"kursusku_backend/internals/features/curriculum/documents/model"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/filestore"
)

type DocumentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Files    filestore.FileStore
}

func NewDocumentController(db *gorm.DB, files filestore.FileStore) *DocumentController {
	return &DocumentController{DB: db, Validate: validator.New(), Files: files}
}

// 🟢 POST /api/i/documents
func (ctrl *DocumentController) CreateDocument(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var document *model.DocumentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		own, err := chapterService.ResolveOwnership(tx, req.DocumentChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		order, err := itemService.NextOrder(tx, req.DocumentChapterID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung urutan item")
		}
		document = req.ToModel(order)
		if err := tx.Create(document).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat dokumen")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dokumen berhasil dibuat", dto.ToDocumentResponse(document))
}

// 🟡 PUT /api/i/documents/:id/file - upload berkas dokumen (multipart "document_file")
func (ctrl *DocumentController) UploadDocumentFile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID dokumen tidak valid")
	}

	fileHeader, err := c.FormFile("document_file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File dokumen tidak ditemukan di body")
	}

	var document model.DocumentModel
	var oldPath string
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.loadDocumentWithGate(tx, documentID, userID, &document); err != nil {
			return err
		}

		newPath, err := ctrl.Files.Store("documents", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file dokumen")
		}

		if document.DocumentFileURL != nil {
			oldPath = *document.DocumentFileURL
		}
		document.DocumentFileURL = &newPath
		if err := tx.Save(&document).Error; err != nil {
			// file baru yatim kalau commit gagal, bersihkan
			_ = ctrl.Files.Delete(newPath)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	// hapus file lama setelah commit sukses, URL eksternal dibiarkan
	if oldPath != "" && !isExternalURL(oldPath) {
		_ = ctrl.Files.Delete(oldPath)
	}

	return helper.Success(c, "File dokumen berhasil diunggah", dto.ToDocumentResponse(&document))
}

// 🟡 PATCH /api/i/documents/:id
func (ctrl *DocumentController) UpdateDocument(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID dokumen tidak valid")
	}

	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var document model.DocumentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.loadDocumentWithGate(tx, documentID, userID, &document); err != nil {
			return err
		}

		req.ApplyToModel(&document)
		if err := tx.Save(&document).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Dokumen berhasil diperbarui", dto.ToDocumentResponse(&document))
}

// 🔴 DELETE /api/i/documents/:id
func (ctrl *DocumentController) SoftDeleteDocument(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID dokumen tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var document model.DocumentModel
		if err := ctrl.loadDocumentWithGate(tx, documentID, userID, &document); err != nil {
			return err
		}
		if err := tx.Delete(&document).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus dokumen")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Dokumen berhasil dihapus", nil)
}

// ♻️ POST /api/i/documents/:id/restore
func (ctrl *DocumentController) RestoreDocument(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID dokumen tidak valid")
	}

	var document model.DocumentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&document, "document_id = ?", documentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Dokumen tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil dokumen")
		}
		if !document.DocumentDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Dokumen belum dihapus")
		}

		// chapter terhapus tidak memblokir restore item di dalamnya
		own, err := chapterService.ResolveOwnershipAny(tx, document.DocumentChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&document).Update("document_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore dokumen")
		}
		document.DocumentDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Dokumen berhasil direstore", dto.ToDocumentResponse(&document))
}

func (ctrl *DocumentController) loadDocumentWithGate(tx *gorm.DB, documentID, userID uuid.UUID, out *model.DocumentModel) error {
	if err := tx.First(out, "document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}

	own, err := chapterService.ResolveOwnership(tx, out.DocumentChapterID)
	if err != nil {
		return err
	}
	return teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID)
}

func isExternalURL(p string) bool {
	return len(p) > 7 && (p[:7] == "http://" || (len(p) > 8 && p[:8] == "https://"))
}
