// file: internals/features/admission/selection/controller/selection_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	selDTO "ppdbku_backend/internals/features/admission/selection/dto"
	selModel "ppdbku_backend/internals/features/admission/selection/model"
	"ppdbku_backend/internals/features/admission/selection/repository"
	"ppdbku_backend/internals/features/admission/selection/service"
	helper "ppdbku_backend/internals/helpers"
)

type SelectionController struct {
	DB     *gorm.DB
	Engine *service.Engine
}

func NewSelectionController(db *gorm.DB) *SelectionController {
	return &SelectionController{
		DB:     db,
		Engine: service.NewEngine(repository.NewGormStore(db)),
	}
}

/*
=========================================================

	DRAFT RANKING (read-only, idempotent)
	GET /:path_id/selection/draft?quota_accepted=&quota_reserved=

=========================================================
*/
func (h *SelectionController) GetDraftRanking(c *fiber.Ctx) error {
	pathID, err := uuid.Parse(strings.TrimSpace(c.Params("path_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "path_id tidak valid")
	}

	qa, err := parseOptionalInt(c.Query("quota_accepted"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quota_accepted tidak valid")
	}
	qr, err := parseOptionalInt(c.Query("quota_reserved"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quota_reserved tidak valid")
	}

	draft, err := h.Engine.DraftRanking(c.UserContext(), pathID, qa, qr)
	if err != nil {
		return mapServiceError(err)
	}
	return helper.JsonOK(c, "Draft ranking berhasil dihitung", selDTO.FromDraftResult(draft))
}

/*
=========================================================

	FINALIZE (side-effecting, satu transaksi)
	POST /:path_id/selection/finalize

=========================================================
*/
func (h *SelectionController) Finalize(c *fiber.Ctx) error {
	pathID, err := uuid.Parse(strings.TrimSpace(c.Params("path_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "path_id tidak valid")
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req selDTO.FinalizeSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := h.Engine.Finalize(c.UserContext(), service.FinalizeInput{
		PathID:        pathID,
		QuotaAccepted: req.QuotaAccepted,
		QuotaReserved: req.QuotaReserved,
		ActorID:       actorID,
		Force:         req.Force,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return helper.JsonCreated(c, "Seleksi berhasil difinalisasi", selDTO.FromSelectionResultModel(*res))
}

/*
=========================================================

	AUDIT READS
	GET /:path_id/selection/results
	GET /:path_id/selection/results/:id

=========================================================
*/
func (h *SelectionController) ListResults(c *fiber.Ctx) error {
	pathID, err := uuid.Parse(strings.TrimSpace(c.Params("path_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "path_id tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&selModel.SelectionResultModel{}).
		Where("selection_result_path_id = ?", pathID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung hasil seleksi")
	}

	var list []selModel.SelectionResultModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("selection_result_path_id = ?", pathID).
		Order("selection_result_finalized_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil hasil seleksi")
	}

	out := make([]selDTO.SelectionResultResponse, 0, len(list))
	for _, m := range list {
		out = append(out, selDTO.FromSelectionResultModel(m))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar hasil seleksi", out, &pg)
}

func (h *SelectionController) GetResult(c *fiber.Ctx) error {
	pathID, err := uuid.Parse(strings.TrimSpace(c.Params("path_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "path_id tidak valid")
	}
	resultID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m selModel.SelectionResultModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("SelectionResultDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("selection_result_detail_rank ASC")
		}).
		Where("selection_result_id = ? AND selection_result_path_id = ?", resultID, pathID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Hasil seleksi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil hasil seleksi")
	}

	return helper.JsonOK(c, "Detail hasil seleksi", selDTO.FromSelectionResultModel(m))
}

/* ====== helpers kecil ====== */

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// mapServiceError memetakan error sentinel service ke fiber error.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrPathNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidQuota):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyFinalized):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		// kegagalan storage diteruskan apa adanya sesudah rollback, tanpa ditelan
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses seleksi: "+err.Error())
	}
}
