// file: internals/features/admission/applications/controller/application_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	appDTO "ppdbku_backend/internals/features/admission/applications/dto"
	appModel "ppdbku_backend/internals/features/admission/applications/model"
	pathModel "ppdbku_backend/internals/features/admission/paths/model"
	helper "ppdbku_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/*
=========================================================

	CREATE (pendaftar)
	POST /applications

=========================================================
*/
func (h *ApplicationController) Create(c *fiber.Ctx) error {
	var req appDTO.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.StudentName != nil {
		n := strings.TrimSpace(*req.StudentName)
		req.StudentName = &n
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// jalur harus ada dan sedang dibuka
		var path pathModel.AdmissionPathModel
		if err := tx.
			Select("admission_path_id", "admission_path_status").
			Where("admission_path_id = ?", req.PathID).
			Take(&path).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jalur pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jalur")
		}
		if path.AdmissionPathStatus != pathModel.PathOpen {
			return fiber.NewError(fiber.StatusBadRequest, "Jalur pendaftaran belum/tidak dibuka")
		}

		m := req.ToModel()
		now := time.Now()
		m.ApplicationStatus = appModel.ApplicationSubmitted
		m.ApplicationSubmittedAt = &now

		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pendaftaran")
		}

		c.Locals("created_application", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("created_application").(appModel.ApplicationModel)
	return helper.JsonCreated(c, "Pendaftaran berhasil dibuat", appDTO.FromApplicationModel(m))
}

/*
=========================================================

	LIST (panitia)
	GET /applications?path_id=&status_in=&q=

=========================================================
*/
func (h *ApplicationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&appModel.ApplicationModel{})

	if raw := strings.TrimSpace(c.Query("path_id")); raw != "" {
		pathID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "path_id tidak valid")
		}
		q = q.Where("application_path_id = ?", pathID)
	}
	if raw := strings.TrimSpace(c.Query("status_in")); raw != "" {
		statuses := strings.Split(raw, ",")
		q = q.Where("application_status IN ?", statuses)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("application_student_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}

	var list []appModel.ApplicationModel
	if err := q.Order("application_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar pendaftaran")
	}

	out := make([]appDTO.ApplicationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, appDTO.FromApplicationModel(m))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pendaftaran", out, &pg)
}

/*
=========================================================

	DETAIL (panitia)
	GET /applications/:id

=========================================================
*/
func (h *ApplicationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m appModel.ApplicationModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("application_id = ?", id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	resp := appDTO.FromApplicationModel(m)

	// embed skor kalau sudah ada
	var score appModel.ApplicationScoreModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("application_score_application_id = ?", id).
		Take(&score).Error; err == nil {
		s := appDTO.FromApplicationScoreModel(score)
		resp.Score = &s
	}

	return helper.JsonOK(c, "Detail pendaftaran", resp)
}

/*
=========================================================

	VERIFY (panitia)
	PATCH /applications/:id/verify

=========================================================
*/
func (h *ApplicationController) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m appModel.ApplicationModel
		if err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("application_id = ?", id).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
		}

		if m.ApplicationStatus != appModel.ApplicationSubmitted {
			return fiber.NewError(fiber.StatusBadRequest,
				"Hanya pendaftaran berstatus submitted yang bisa diverifikasi (sekarang: "+string(m.ApplicationStatus)+")")
		}

		now := time.Now()
		if err := tx.Model(&appModel.ApplicationModel{}).
			Where("application_id = ?", id).
			Updates(map[string]any{
				"application_status":      appModel.ApplicationVerified,
				"application_verified_at": now,
				"application_updated_at":  now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memverifikasi pendaftaran")
		}

		m.ApplicationStatus = appModel.ApplicationVerified
		m.ApplicationVerifiedAt = &now
		c.Locals("verified_application", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("verified_application").(appModel.ApplicationModel)
	return helper.JsonUpdated(c, "Pendaftaran berhasil diverifikasi", appDTO.FromApplicationModel(m))
}
