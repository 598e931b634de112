package controller

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/courses/model"
	teamModel "kursusku_backend/internals/features/users/teams/model"
	"kursusku_backend/internals/helpers/filestore"
)

// fakeFileStore merekam operasi storage supaya urutan delete bisa diverifikasi.
type fakeFileStore struct {
	stored    []string
	deleted   []string
	deleteErr error
}

var _ filestore.FileStore = (*fakeFileStore)(nil)

func (f *fakeFileStore) Store(folder string, fh *multipart.FileHeader) (string, error) {
	return f.StoreBytes(folder, fh.Filename, nil)
}

func (f *fakeFileStore) StoreBytes(folder, filename string, _ []byte) (string, error) {
	path := folder + "/" + filename
	f.stored = append(f.stored, path)
	return path, nil
}

func (f *fakeFileStore) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	return f.deleteErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(&model.CourseModel{}, &teamModel.TeamMembershipModel{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func newThumbnailApp(t *testing.T, db *gorm.DB, files filestore.FileStore, userID uuid.UUID) *fiber.App {
	t.Helper()
	ctrl := NewCourseController(db)
	ctrl.Files = files

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Put("/courses/:id/thumbnail", ctrl.UploadThumbnail)
	return app
}

func seedCourse(t *testing.T, db *gorm.DB, owner uuid.UUID, thumbnail *string) *model.CourseModel {
	t.Helper()
	course := model.CourseModel{
		CourseTitle:        "Belajar Go",
		CourseSlug:         "belajar-go",
		CourseUserID:       owner,
		CourseCategoryID:   uuid.New(),
		CourseThumbnailURL: thumbnail,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func buildThumbnailBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("course_thumbnail", "thumb.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func strPtr(s string) *string { return &s }

func TestUploadThumbnail_DeletesOldLocalPathAfterSave(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	course := seedCourse(t, db, owner, strPtr("courses/old-thumb.webp"))

	files := &fakeFileStore{}
	app := newThumbnailApp(t, db, files, owner)

	body, contentType := buildThumbnailBody(t)
	req := httptest.NewRequest("PUT", "/courses/"+course.CourseID.String()+"/thumbnail", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, []string{"courses/old-thumb.webp"}, files.deleted)

	var saved model.CourseModel
	require.NoError(t, db.First(&saved, "course_id = ?", course.CourseID).Error)
	require.NotNil(t, saved.CourseThumbnailURL)
	require.Equal(t, "courses/thumb.webp", *saved.CourseThumbnailURL)
}

// Gagal hapus file lama tidak boleh membatalkan thumbnail yang sudah tersimpan;
// cleanup disk berjalan setelah commit dan tidak bisa di-rollback.
func TestUploadThumbnail_CleanupFailureKeepsNewThumbnail(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	course := seedCourse(t, db, owner, strPtr("courses/old-thumb.webp"))

	files := &fakeFileStore{deleteErr: errors.New("disk error")}
	app := newThumbnailApp(t, db, files, owner)

	body, contentType := buildThumbnailBody(t)
	req := httptest.NewRequest("PUT", "/courses/"+course.CourseID.String()+"/thumbnail", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved model.CourseModel
	require.NoError(t, db.First(&saved, "course_id = ?", course.CourseID).Error)
	require.NotNil(t, saved.CourseThumbnailURL)
	require.Equal(t, "courses/thumb.webp", *saved.CourseThumbnailURL)
}

func TestUploadThumbnail_ExternalOldURLNeverDeleted(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	course := seedCourse(t, db, owner, strPtr("https://cdn.example.com/thumb.webp"))

	files := &fakeFileStore{}
	app := newThumbnailApp(t, db, files, owner)

	body, contentType := buildThumbnailBody(t)
	req := httptest.NewRequest("PUT", "/courses/"+course.CourseID.String()+"/thumbnail", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Empty(t, files.deleted)
}

func TestUploadThumbnail_StrangerForbiddenAndNothingDeleted(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, uuid.New(), strPtr("courses/old-thumb.webp"))

	files := &fakeFileStore{}
	app := newThumbnailApp(t, db, files, uuid.New())

	body, contentType := buildThumbnailBody(t)
	req := httptest.NewRequest("PUT", "/courses/"+course.CourseID.String()+"/thumbnail", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Empty(t, files.deleted)

	var saved model.CourseModel
	require.NoError(t, db.First(&saved, "course_id = ?", course.CourseID).Error)
	require.NotNil(t, saved.CourseThumbnailURL)
	require.Equal(t, "courses/old-thumb.webp", *saved.CourseThumbnailURL)
}
