package seeds

import (
	"log"

	"gorm.io/gorm"

	categoryModel "kursusku_backend/internals/features/courses/categories/model"
	helper "kursusku_backend/internals/helpers"
)

var defaultCategories = []string{
	"Pemrograman",
	"Desain",
	"Bisnis",
	"Bahasa",
	"Pengembangan Diri",
}

// RunAllSeeds mengisi data awal yang dibutuhkan instance baru.
// Idempotent: kategori yang sudah ada tidak dibuat ulang.
func RunAllSeeds(db *gorm.DB) {
	seedCategories(db)
}

func seedCategories(db *gorm.DB) {
	for _, name := range defaultCategories {
		var cnt int64
		if err := db.Model(&categoryModel.CategoryModel{}).
			Where("category_name = ?", name).
			Count(&cnt).Error; err != nil {
			log.Printf("[SEED] gagal cek kategori %q: %v", name, err)
			continue
		}
		if cnt > 0 {
			continue
		}

		slug, err := helper.GenerateUniqueSlug(db, helper.SlugOptions{
			Table:            "categories",
			SlugColumn:       "category_slug",
			SoftDeleteColumn: "category_deleted_at",
			DefaultBase:      "kategori",
		}, name)
		if err != nil {
			log.Printf("[SEED] gagal membuat slug kategori %q: %v", name, err)
			continue
		}

		if err := db.Create(&categoryModel.CategoryModel{
			CategoryName:     name,
			CategorySlug:     slug,
			CategoryIsActive: true,
		}).Error; err != nil {
			log.Printf("[SEED] gagal membuat kategori %q: %v", name, err)
		}
	}
}
