// file: internals/features/admission/paths/controller/admission_path_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pathDTO "ppdbku_backend/internals/features/admission/paths/dto"
	pathModel "ppdbku_backend/internals/features/admission/paths/model"
	helper "ppdbku_backend/internals/helpers"
)

type AdmissionPathController struct {
	DB *gorm.DB
}

func NewAdmissionPathController(db *gorm.DB) *AdmissionPathController {
	return &AdmissionPathController{DB: db}
}

// transisi status yang diizinkan
var allowedPathTransitions = map[pathModel.AdmissionPathStatus][]pathModel.AdmissionPathStatus{
	pathModel.PathDraft:  {pathModel.PathOpen, pathModel.PathArchived},
	pathModel.PathOpen:   {pathModel.PathClosed},
	pathModel.PathClosed: {pathModel.PathOpen, pathModel.PathArchived},
}

/*
=========================================================

	CREATE
	POST /admission-paths

=========================================================
*/
func (h *AdmissionPathController) Create(c *fiber.Ctx) error {
	var req pathDTO.CreateAdmissionPathRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// 🧼 Normalisasi ringan
	req.Name = strings.TrimSpace(req.Name)
	if req.Slug != nil {
		s := helper.Slugify(strings.TrimSpace(*req.Slug), 120)
		if s == "" {
			req.Slug = nil
		} else {
			req.Slug = &s
		}
	}

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		baseSlug := ""
		if req.Slug != nil {
			baseSlug = *req.Slug
		} else {
			baseSlug = helper.Slugify(req.Name, 120)
		}

		uniqueSlug, err := helper.EnsureUniqueSlugCI(
			c.UserContext(), tx,
			"admission_paths", "admission_path_slug",
			baseSlug,
			func(q *gorm.DB) *gorm.DB {
				return q.Where("admission_path_deleted_at IS NULL")
			},
			120,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghasilkan slug unik")
		}

		m := req.ToModel()
		m.AdmissionPathSlug = &uniqueSlug

		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Slug jalur sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jalur pendaftaran")
		}

		c.Locals("created_path", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("created_path").(pathModel.AdmissionPathModel)
	return helper.JsonCreated(c, "Jalur pendaftaran berhasil dibuat", pathDTO.FromAdmissionPathModel(m))
}

/*
=========================================================

	LIST & DETAIL (public)
	GET /admission-paths
	GET /admission-paths/:id

=========================================================
*/
func (h *AdmissionPathController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&pathModel.AdmissionPathModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("admission_path_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung jalur")
	}

	var list []pathModel.AdmissionPathModel
	if err := q.Order("admission_path_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar jalur")
	}

	out := make([]pathDTO.AdmissionPathResponse, 0, len(list))
	for _, m := range list {
		out = append(out, pathDTO.FromAdmissionPathModel(m))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar jalur pendaftaran", out, &pg)
}

func (h *AdmissionPathController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m pathModel.AdmissionPathModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("admission_path_id = ?", id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jalur pendaftaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jalur")
	}
	return helper.JsonOK(c, "Detail jalur pendaftaran", pathDTO.FromAdmissionPathModel(m))
}

/*
=========================================================

	UPDATE (partial)
	PATCH /admission-paths/:id

=========================================================
*/
func (h *AdmissionPathController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pathDTO.UpdateAdmissionPathRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m pathModel.AdmissionPathModel
		if err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("admission_path_id = ?", id).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jalur pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jalur")
		}
		if m.AdmissionPathStatus == pathModel.PathArchived {
			return fiber.NewError(fiber.StatusBadRequest, "Jalur yang diarsipkan tidak bisa diubah")
		}

		req.Apply(&m)

		if err := tx.Model(&pathModel.AdmissionPathModel{}).
			Where("admission_path_id = ?", m.AdmissionPathID).
			Updates(map[string]any{
				"admission_path_name":               m.AdmissionPathName,
				"admission_path_quota":              m.AdmissionPathQuota,
				"admission_path_required_documents": m.AdmissionPathRequiredDocuments,
				"admission_path_description":        m.AdmissionPathDescription,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui jalur")
		}

		c.Locals("updated_path", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_path").(pathModel.AdmissionPathModel)
	return helper.JsonUpdated(c, "Jalur pendaftaran berhasil diperbarui", pathDTO.FromAdmissionPathModel(m))
}

/*
=========================================================

	STATUS TRANSITION
	PATCH /admission-paths/:id/status

=========================================================
*/
func (h *AdmissionPathController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pathDTO.UpdateAdmissionPathStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m pathModel.AdmissionPathModel
		if err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("admission_path_id = ?", id).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jalur pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jalur")
		}

		if !transitionAllowed(m.AdmissionPathStatus, req.Status) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Transisi status "+string(m.AdmissionPathStatus)+" → "+string(req.Status)+" tidak diizinkan")
		}

		if err := tx.Model(&pathModel.AdmissionPathModel{}).
			Where("admission_path_id = ?", m.AdmissionPathID).
			Update("admission_path_status", req.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status jalur")
		}

		m.AdmissionPathStatus = req.Status
		c.Locals("updated_path", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_path").(pathModel.AdmissionPathModel)
	return helper.JsonUpdated(c, "Status jalur berhasil diperbarui", pathDTO.FromAdmissionPathModel(m))
}

/*
=========================================================

	DELETE (soft)
	DELETE /admission-paths/:id

=========================================================
*/
func (h *AdmissionPathController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m pathModel.AdmissionPathModel
		if err := tx.First(&m, "admission_path_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jalur pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jalur")
		}
		if m.AdmissionPathDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Jalur sudah dihapus")
		}

		// soft delete
		if err := tx.Delete(&pathModel.AdmissionPathModel{}, "admission_path_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jalur")
		}

		c.Locals("deleted_path", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_path").(pathModel.AdmissionPathModel)
	return helper.JsonDeleted(c, "Jalur pendaftaran berhasil dihapus", pathDTO.FromAdmissionPathModel(m))
}

func transitionAllowed(from, to pathModel.AdmissionPathStatus) bool {
	for _, s := range allowedPathTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
