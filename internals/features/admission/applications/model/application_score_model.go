// file: internals/features/admission/applications/model/application_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: application_scores
   Skor seleksi satu pendaftaran. Ranking hanya membaca
   skor yang sudah ditandai final (is_final = true).
====================================================== */

type ApplicationScoreModel struct {
	ApplicationScoreID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:application_score_id" json:"application_score_id"`
	ApplicationScoreApplicationID uuid.UUID `gorm:"not null;uniqueIndex;column:application_score_application_id" json:"application_score_application_id"`

	ApplicationScoreValue float64 `gorm:"not null;default:0;check:application_score_value >= 0;column:application_score_value" json:"application_score_value"`

	ApplicationScoreIsFinal     bool       `gorm:"not null;default:false;column:application_score_is_final" json:"application_score_is_final"`
	ApplicationScoreScoredBy    *uuid.UUID `gorm:"column:application_score_scored_by" json:"application_score_scored_by"`
	ApplicationScoreFinalizedAt *time.Time `gorm:"column:application_score_finalized_at" json:"application_score_finalized_at"`

	ApplicationScoreCreatedAt time.Time `gorm:"not null;default:now();column:application_score_created_at" json:"application_score_created_at"`
	ApplicationScoreUpdatedAt time.Time `gorm:"not null;default:now();column:application_score_updated_at" json:"application_score_updated_at"`
}

func (ApplicationScoreModel) TableName() string { return "application_scores" }
