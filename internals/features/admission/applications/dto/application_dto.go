// file: internals/features/admission/applications/dto/application_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	m "ppdbku_backend/internals/features/admission/applications/model"
)

/* ======================================================
   Requests
====================================================== */

// Create request body (POST /applications)
type CreateApplicationRequest struct {
	PathID      uuid.UUID  `json:"application_path_id" validate:"required"`
	StudentName *string    `json:"application_student_name" validate:"omitempty,max=160"`
	DateOfBirth *time.Time `json:"application_date_of_birth"`
	DistanceM   *float64   `json:"application_distance_m" validate:"omitempty,gte=0"`

	DocumentSnapshot map[string]interface{} `json:"application_document_snapshot"`
}

func (r CreateApplicationRequest) ToModel() m.ApplicationModel {
	mod := m.ApplicationModel{
		ApplicationPathID:      r.PathID,
		ApplicationStudentName: r.StudentName,
		ApplicationDateOfBirth: r.DateOfBirth,
		ApplicationDistanceM:   r.DistanceM,
		ApplicationStatus:      m.ApplicationDraft,
	}
	if r.DocumentSnapshot != nil {
		if b, err := json.Marshal(r.DocumentSnapshot); err == nil {
			mod.ApplicationDocumentSnapshot = b
		}
	}
	return mod
}

// Skor: upsert nilai (PUT /:id/score) — hanya selama belum final
type UpsertApplicationScoreRequest struct {
	Value float64 `json:"application_score_value" validate:"gte=0"`
}

/* ======================================================
   Query params (List)
====================================================== */

type ListApplicationQuery struct {
	PathID   *uuid.UUID          `query:"path_id"`
	StatusIn []m.ApplicationStatus `query:"status_in"` // comma-separated → parser di controller
	Q        string              `query:"q"`
}

/* ======================================================
   Responses
====================================================== */

type ApplicationResponse struct {
	ApplicationID     uuid.UUID  `json:"application_id"`
	ApplicationPathID uuid.UUID  `json:"application_path_id"`

	ApplicationStudentName *string    `json:"application_student_name"`
	ApplicationDateOfBirth *time.Time `json:"application_date_of_birth"`
	ApplicationDistanceM   *float64   `json:"application_distance_m"`

	ApplicationStatus m.ApplicationStatus `json:"application_status"`

	ApplicationDocumentSnapshot map[string]interface{} `json:"application_document_snapshot,omitempty"`

	ApplicationSubmittedAt *time.Time `json:"application_submitted_at"`
	ApplicationVerifiedAt  *time.Time `json:"application_verified_at"`
	ApplicationCreatedAt   time.Time  `json:"application_created_at"`
	ApplicationUpdatedAt   time.Time  `json:"application_updated_at"`

	// skor ter-embed kalau ada
	Score *ApplicationScoreResponse `json:"score,omitempty"`
}

type ApplicationScoreResponse struct {
	ApplicationScoreID          uuid.UUID  `json:"application_score_id"`
	ApplicationScoreValue       float64    `json:"application_score_value"`
	ApplicationScoreIsFinal     bool       `json:"application_score_is_final"`
	ApplicationScoreScoredBy    *uuid.UUID `json:"application_score_scored_by"`
	ApplicationScoreFinalizedAt *time.Time `json:"application_score_finalized_at"`
}

func FromApplicationModel(mod m.ApplicationModel) ApplicationResponse {
	out := ApplicationResponse{
		ApplicationID:          mod.ApplicationID,
		ApplicationPathID:      mod.ApplicationPathID,
		ApplicationStudentName: mod.ApplicationStudentName,
		ApplicationDateOfBirth: mod.ApplicationDateOfBirth,
		ApplicationDistanceM:   mod.ApplicationDistanceM,
		ApplicationStatus:      mod.ApplicationStatus,
		ApplicationSubmittedAt: mod.ApplicationSubmittedAt,
		ApplicationVerifiedAt:  mod.ApplicationVerifiedAt,
		ApplicationCreatedAt:   mod.ApplicationCreatedAt,
		ApplicationUpdatedAt:   mod.ApplicationUpdatedAt,
	}
	if len(mod.ApplicationDocumentSnapshot) > 0 {
		var snap map[string]interface{}
		if err := json.Unmarshal(mod.ApplicationDocumentSnapshot, &snap); err == nil {
			out.ApplicationDocumentSnapshot = snap
		}
	}
	return out
}

func FromApplicationScoreModel(mod m.ApplicationScoreModel) ApplicationScoreResponse {
	return ApplicationScoreResponse{
		ApplicationScoreID:          mod.ApplicationScoreID,
		ApplicationScoreValue:       mod.ApplicationScoreValue,
		ApplicationScoreIsFinal:     mod.ApplicationScoreIsFinal,
		ApplicationScoreScoredBy:    mod.ApplicationScoreScoredBy,
		ApplicationScoreFinalizedAt: mod.ApplicationScoreFinalizedAt,
	}
}
