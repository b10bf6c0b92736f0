// file: internals/features/admission/selection/dto/selection_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	selModel "ppdbku_backend/internals/features/admission/selection/model"
	"ppdbku_backend/internals/features/admission/selection/service"
)

/* ======================================================
   Requests
====================================================== */

// Body untuk POST /:path_id/selection/finalize
type FinalizeSelectionRequest struct {
	QuotaAccepted int  `json:"selection_quota_accepted" validate:"gte=0"`
	QuotaReserved int  `json:"selection_quota_reserved" validate:"gte=0"`
	Force         bool `json:"selection_force"`
}

/* ======================================================
   Responses
====================================================== */

type RankedCandidateResponse struct {
	ApplicationID uuid.UUID  `json:"application_id"`
	StudentName   string     `json:"student_name"`
	Score         float64    `json:"score"`
	DistanceM     *float64   `json:"distance_m,omitempty"`
	AgeYears      *int       `json:"age_years,omitempty"`
	Status        string     `json:"status"`
	Rank          int        `json:"rank"`
	Tier          string     `json:"tier"`
}

type TierTotalsResponse struct {
	Accepted int `json:"accepted"`
	Reserved int `json:"reserved"`
	Rejected int `json:"rejected"`
}

type DraftRankingResponse struct {
	PathID        uuid.UUID                 `json:"path_id"`
	QuotaAccepted int                       `json:"quota_accepted"`
	QuotaReserved int                       `json:"quota_reserved"`
	Candidates    []RankedCandidateResponse `json:"candidates"`
	Totals        TierTotalsResponse        `json:"totals"`
}

type SelectionResultResponse struct {
	SelectionResultID              uuid.UUID `json:"selection_result_id"`
	SelectionResultPathID          uuid.UUID `json:"selection_result_path_id"`
	SelectionResultQuotaAccepted   int       `json:"selection_result_quota_accepted"`
	SelectionResultQuotaReserved   int       `json:"selection_result_quota_reserved"`
	SelectionResultTotalCandidates int       `json:"selection_result_total_candidates"`
	SelectionResultFinalizedBy     uuid.UUID `json:"selection_result_finalized_by"`
	SelectionResultFinalizedAt     time.Time `json:"selection_result_finalized_at"`

	Details []SelectionResultDetailResponse `json:"details,omitempty"`
}

type SelectionResultDetailResponse struct {
	SelectionResultDetailID uuid.UUID `json:"selection_result_detail_id"`
	ApplicationID           uuid.UUID `json:"application_id"`
	Rank                    int       `json:"rank"`
	Tier                    string    `json:"tier"`
	StudentNameSnapshot     string    `json:"student_name_snapshot"`
	ScoreSnapshot           float64   `json:"score_snapshot"`
	DistanceMSnapshot       *float64  `json:"distance_m_snapshot,omitempty"`
	AgeSnapshot             *int      `json:"age_snapshot,omitempty"`
}

/* ======================================================
   Mappers
====================================================== */

func FromDraftResult(d *service.DraftResult) DraftRankingResponse {
	out := DraftRankingResponse{
		PathID:        d.PathID,
		QuotaAccepted: d.QuotaAccepted,
		QuotaReserved: d.QuotaReserved,
		Candidates:    make([]RankedCandidateResponse, 0, len(d.Candidates)),
		Totals: TierTotalsResponse{
			Accepted: d.Totals.Accepted,
			Reserved: d.Totals.Reserved,
			Rejected: d.Totals.Rejected,
		},
	}
	for _, rc := range d.Candidates {
		out.Candidates = append(out.Candidates, RankedCandidateResponse{
			ApplicationID: rc.ID,
			StudentName:   rc.Name,
			Score:         rc.Score,
			DistanceM:     rc.DistanceM,
			AgeYears:      rc.AgeYears,
			Status:        string(rc.Status),
			Rank:          rc.Rank,
			Tier:          string(rc.Tier),
		})
	}
	return out
}

func FromSelectionResultModel(m selModel.SelectionResultModel) SelectionResultResponse {
	out := SelectionResultResponse{
		SelectionResultID:              m.SelectionResultID,
		SelectionResultPathID:          m.SelectionResultPathID,
		SelectionResultQuotaAccepted:   m.SelectionResultQuotaAccepted,
		SelectionResultQuotaReserved:   m.SelectionResultQuotaReserved,
		SelectionResultTotalCandidates: m.SelectionResultTotalCandidates,
		SelectionResultFinalizedBy:     m.SelectionResultFinalizedBy,
		SelectionResultFinalizedAt:     m.SelectionResultFinalizedAt,
	}
	for _, d := range m.SelectionResultDetails {
		out.Details = append(out.Details, FromSelectionResultDetailModel(d))
	}
	return out
}

func FromSelectionResultDetailModel(d selModel.SelectionResultDetailModel) SelectionResultDetailResponse {
	return SelectionResultDetailResponse{
		SelectionResultDetailID: d.SelectionResultDetailID,
		ApplicationID:           d.SelectionResultDetailApplicationID,
		Rank:                    d.SelectionResultDetailRank,
		Tier:                    d.SelectionResultDetailTier,
		StudentNameSnapshot:     d.SelectionResultDetailStudentNameSnapshot,
		ScoreSnapshot:           d.SelectionResultDetailScoreSnapshot,
		DistanceMSnapshot:       d.SelectionResultDetailDistanceMSnapshot,
		AgeSnapshot:             d.SelectionResultDetailAgeSnapshot,
	}
}
