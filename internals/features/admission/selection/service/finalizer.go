// file: internals/features/admission/selection/service/finalizer.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	appModel "ppdbku_backend/internals/features/admission/applications/model"
	selModel "ppdbku_backend/internals/features/admission/selection/model"
)

// Engine membungkus Store yang di-inject; tidak ada handle DB global di sini.
type Engine struct {
	Store Store
	Now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{Store: store, Now: time.Now}
}

// DraftResult: hasil ranking draft (read-only, belum ada commit apa pun).
type DraftResult struct {
	PathID        uuid.UUID
	QuotaAccepted int
	QuotaReserved int
	Candidates    []RankedCandidate
	Totals        TierTotals
}

// FinalizeInput: parameter satu pemanggilan finalisasi.
type FinalizeInput struct {
	PathID        uuid.UUID
	QuotaAccepted int
	QuotaReserved int
	ActorID       uuid.UUID

	// Force mengizinkan finalisasi ulang sebagai snapshot historis tambahan.
	// Tanpa Force, jalur yang sudah punya hasil → ErrAlreadyFinalized.
	Force bool
}

// DraftRanking menghitung ranking draft. quotaAccepted/quotaReserved nil →
// default kuota jalur / nol. Pool kandidat selalu dihitung segar, tanpa cache.
func (e *Engine) DraftRanking(ctx context.Context, pathID uuid.UUID, quotaAccepted, quotaReserved *int) (*DraftResult, error) {
	path, err := e.Store.GetAdmissionPath(ctx, pathID)
	if err != nil {
		return nil, err
	}

	qa := path.Quota
	if quotaAccepted != nil {
		qa = *quotaAccepted
	}
	qr := 0
	if quotaReserved != nil {
		qr = *quotaReserved
	}
	if qa < 0 || qr < 0 {
		return nil, ErrInvalidQuota
	}

	candidates, err := e.Store.ListEligibleCandidates(ctx, pathID)
	if err != nil {
		return nil, err
	}

	ranked, totals, err := Rank(candidates, qa, qr)
	if err != nil {
		return nil, err
	}

	return &DraftResult{
		PathID:        pathID,
		QuotaAccepted: qa,
		QuotaReserved: qr,
		Candidates:    ranked,
		Totals:        totals,
	}, nil
}

// Finalize menjalankan seluruh finalisasi dalam SATU transaksi:
// snapshot SelectionResult + satu detail per kandidat + mutasi status
// aplikasi. Gagal di langkah mana pun → rollback total, tanpa efek teramati.
// Ranking SELALU dihitung ulang server-side di dalam transaksi; ranking
// kiriman caller tidak pernah dipercaya.
func (e *Engine) Finalize(ctx context.Context, in FinalizeInput) (*selModel.SelectionResultModel, error) {
	// fail fast: validasi kuota sebelum baca apa pun
	if in.QuotaAccepted < 0 || in.QuotaReserved < 0 {
		return nil, ErrInvalidQuota
	}

	var result *selModel.SelectionResultModel

	err := e.Store.WithinTx(ctx, func(tx Store) error {
		// Serialisasi finalisasi per jalur. Jalur lain tidak terblokir.
		if err := tx.LockPath(ctx, in.PathID); err != nil {
			return err
		}

		if _, err := tx.GetAdmissionPath(ctx, in.PathID); err != nil {
			return err
		}

		if !in.Force {
			n, err := tx.CountSelectionResults(ctx, in.PathID)
			if err != nil {
				return err
			}
			if n > 0 {
				return ErrAlreadyFinalized
			}
		}

		candidates, err := tx.ListEligibleCandidates(ctx, in.PathID)
		if err != nil {
			return err
		}
		ranked, _, err := Rank(candidates, in.QuotaAccepted, in.QuotaReserved)
		if err != nil {
			return err
		}

		res := &selModel.SelectionResultModel{
			SelectionResultPathID:          in.PathID,
			SelectionResultQuotaAccepted:   in.QuotaAccepted,
			SelectionResultQuotaReserved:   in.QuotaReserved,
			SelectionResultTotalCandidates: len(ranked),
			SelectionResultFinalizedBy:     in.ActorID,
			SelectionResultFinalizedAt:     e.Now(),
		}
		if err := tx.InsertSelectionResult(ctx, res); err != nil {
			return err
		}

		for _, rc := range ranked {
			det := &selModel.SelectionResultDetailModel{
				SelectionResultDetailResultID:            res.SelectionResultID,
				SelectionResultDetailApplicationID:       rc.ID,
				SelectionResultDetailRank:                rc.Rank,
				SelectionResultDetailTier:                string(rc.Tier),
				SelectionResultDetailStudentNameSnapshot: rc.Name,
				SelectionResultDetailScoreSnapshot:       rc.Score,
				SelectionResultDetailDistanceMSnapshot:   rc.DistanceM,
				SelectionResultDetailAgeSnapshot:         rc.AgeYears,
			}
			if err := tx.InsertSelectionResultDetail(ctx, det); err != nil {
				return err
			}
			if err := tx.UpdateApplicationStatus(ctx, rc.ID, statusForTier(rc.Tier)); err != nil {
				return err
			}
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// statusForTier: accepted→accepted, reserved→waitlisted, rejected→rejected.
func statusForTier(t Tier) appModel.ApplicationStatus {
	switch t {
	case TierAccepted:
		return appModel.ApplicationAccepted
	case TierReserved:
		return appModel.ApplicationWaitlisted
	default:
		return appModel.ApplicationRejected
	}
}
