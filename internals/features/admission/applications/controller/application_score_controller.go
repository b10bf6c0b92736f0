// file: internals/features/admission/applications/controller/application_score_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDTO "ppdbku_backend/internals/features/admission/applications/dto"
	appModel "ppdbku_backend/internals/features/admission/applications/model"
	helper "ppdbku_backend/internals/helpers"
)

type ApplicationScoreController struct {
	DB *gorm.DB
}

func NewApplicationScoreController(db *gorm.DB) *ApplicationScoreController {
	return &ApplicationScoreController{DB: db}
}

/*
=========================================================

	UPSERT SKOR (panitia)
	PUT /applications/:id/score

=========================================================
*/
func (h *ApplicationScoreController) Upsert(c *fiber.Ctx) error {
	appID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	scorerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req appDTO.UpsertApplicationScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var app appModel.ApplicationModel
		if err := tx.
			Select("application_id").
			Where("application_id = ?", appID).
			Take(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
		}

		// skor yang sudah final tidak boleh ditimpa
		var existing appModel.ApplicationScoreModel
		err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("application_score_application_id = ?", appID).
			Take(&existing).Error
		if err == nil && existing.ApplicationScoreIsFinal {
			return fiber.NewError(fiber.StatusConflict, "Skor sudah final dan tidak bisa diubah")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil skor")
		}

		m := appModel.ApplicationScoreModel{
			ApplicationScoreApplicationID: appID,
			ApplicationScoreValue:         req.Value,
			ApplicationScoreScoredBy:      &scorerID,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "application_score_application_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"application_score_value":      req.Value,
					"application_score_scored_by":  scorerID,
					"application_score_updated_at": time.Now(),
				}),
			}).
			Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan skor")
		}

		c.Locals("upserted_score", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("upserted_score").(appModel.ApplicationScoreModel)
	return helper.JsonUpdated(c, "Skor berhasil disimpan", appDTO.FromApplicationScoreModel(m))
}

/*
=========================================================

	FINALIZE SKOR (panitia)
	PATCH /applications/:id/score/finalize

=========================================================
*/
func (h *ApplicationScoreController) FinalizeScore(c *fiber.Ctx) error {
	appID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m appModel.ApplicationScoreModel
		if err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("application_score_application_id = ?", appID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Skor belum pernah diinput untuk pendaftaran ini")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil skor")
		}
		if m.ApplicationScoreIsFinal {
			return fiber.NewError(fiber.StatusBadRequest, "Skor sudah final")
		}

		now := time.Now()
		if err := tx.Model(&appModel.ApplicationScoreModel{}).
			Where("application_score_id = ?", m.ApplicationScoreID).
			Updates(map[string]any{
				"application_score_is_final":     true,
				"application_score_finalized_at": now,
				"application_score_updated_at":   now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memfinalkan skor")
		}

		m.ApplicationScoreIsFinal = true
		m.ApplicationScoreFinalizedAt = &now
		c.Locals("finalized_score", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("finalized_score").(appModel.ApplicationScoreModel)
	return helper.JsonUpdated(c, "Skor berhasil difinalkan", appDTO.FromApplicationScoreModel(m))
}
