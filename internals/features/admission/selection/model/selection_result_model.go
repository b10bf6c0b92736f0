// file: internals/features/admission/selection/model/selection_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: selection_results
   Satu event finalisasi seleksi untuk satu jalur.
   Append-only: tidak pernah di-update/di-delete oleh
   operasi normal (jejak audit).
====================================================== */

type SelectionResultModel struct {
	SelectionResultID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:selection_result_id" json:"selection_result_id"`
	SelectionResultPathID uuid.UUID `gorm:"not null;index;column:selection_result_path_id" json:"selection_result_path_id"`

	// kuota yang DIPAKAI saat finalisasi (bisa berbeda dari kuota live jalurnya)
	SelectionResultQuotaAccepted int `gorm:"not null;check:selection_result_quota_accepted >= 0;column:selection_result_quota_accepted" json:"selection_result_quota_accepted"`
	SelectionResultQuotaReserved int `gorm:"not null;check:selection_result_quota_reserved >= 0;column:selection_result_quota_reserved" json:"selection_result_quota_reserved"`

	SelectionResultTotalCandidates int `gorm:"not null;default:0;column:selection_result_total_candidates" json:"selection_result_total_candidates"`

	SelectionResultFinalizedBy uuid.UUID `gorm:"not null;column:selection_result_finalized_by" json:"selection_result_finalized_by"`
	SelectionResultFinalizedAt time.Time `gorm:"not null;default:now();column:selection_result_finalized_at" json:"selection_result_finalized_at"`

	SelectionResultCreatedAt time.Time `gorm:"not null;default:now();column:selection_result_created_at" json:"selection_result_created_at"`

	// hasMany: dihapus hanya ikut parent (cascade di DDL)
	SelectionResultDetails []SelectionResultDetailModel `gorm:"foreignKey:SelectionResultDetailResultID;references:SelectionResultID;constraint:OnDelete:CASCADE" json:"selection_result_details,omitempty"`
}

func (SelectionResultModel) TableName() string { return "selection_results" }

/* ======================================================
   Model: selection_result_details
   Satu baris per kandidat ter-ranking pada satu event
   finalisasi, plus snapshot nilai saat keputusan dibuat.
====================================================== */

type SelectionResultDetailModel struct {
	SelectionResultDetailID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:selection_result_detail_id" json:"selection_result_detail_id"`
	SelectionResultDetailResultID uuid.UUID `gorm:"not null;uniqueIndex:uq_selection_result_detail_rank;column:selection_result_detail_result_id" json:"selection_result_detail_result_id"`

	SelectionResultDetailApplicationID uuid.UUID `gorm:"not null;column:selection_result_detail_application_id" json:"selection_result_detail_application_id"`

	// rank 1-based, rapat (1..N tanpa lubang); unik per result
	SelectionResultDetailRank int    `gorm:"not null;check:selection_result_detail_rank > 0;uniqueIndex:uq_selection_result_detail_rank;column:selection_result_detail_rank" json:"selection_result_detail_rank"`
	SelectionResultDetailTier string `gorm:"not null;column:selection_result_detail_tier" json:"selection_result_detail_tier"`

	// snapshot saat finalisasi
	SelectionResultDetailStudentNameSnapshot string   `gorm:"column:selection_result_detail_student_name_snapshot" json:"selection_result_detail_student_name_snapshot"`
	SelectionResultDetailScoreSnapshot       float64  `gorm:"column:selection_result_detail_score_snapshot" json:"selection_result_detail_score_snapshot"`
	SelectionResultDetailDistanceMSnapshot   *float64 `gorm:"column:selection_result_detail_distance_m_snapshot" json:"selection_result_detail_distance_m_snapshot"`
	SelectionResultDetailAgeSnapshot         *int     `gorm:"column:selection_result_detail_age_snapshot" json:"selection_result_detail_age_snapshot"`

	SelectionResultDetailCreatedAt time.Time `gorm:"not null;default:now();column:selection_result_detail_created_at" json:"selection_result_detail_created_at"`
}

func (SelectionResultDetailModel) TableName() string { return "selection_result_details" }
