// file: internals/features/admission/selection/service/store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	appModel "ppdbku_backend/internals/features/admission/applications/model"
	selModel "ppdbku_backend/internals/features/admission/selection/model"
)

// Error sentinel layer service; controller yang memetakan ke status HTTP.
var (
	ErrPathNotFound     = errors.New("jalur pendaftaran tidak ditemukan")
	ErrInvalidQuota     = errors.New("kuota tidak valid (harus >= 0)")
	ErrAlreadyFinalized = errors.New("seleksi jalur ini sudah difinalisasi")
)

// PathInfo adalah potongan admission_path yang dibutuhkan engine: kuotanya saja.
type PathInfo struct {
	ID    uuid.UUID
	Quota int
}

// Candidate adalah satu kandidat eligible (status verified + skor final)
// dengan atribut yang dipakai comparator & tampilan draft.
type Candidate struct {
	ID          uuid.UUID
	Name        string
	Score       float64
	DistanceM   *float64
	DateOfBirth *time.Time
	AgeYears    *int
	Status      appModel.ApplicationStatus
}

// Store adalah kontrak penyimpanan yang di-inject ke engine.
// Implementasi produksi: repository.GormStore. Test memakai fake in-memory.
type Store interface {
	// GetAdmissionPath mengembalikan ErrPathNotFound jika jalur tidak ada.
	GetAdmissionPath(ctx context.Context, pathID uuid.UUID) (PathInfo, error)

	// ListEligibleCandidates hanya mengembalikan kandidat verified + skor final.
	// Filter eligibility ada di query-nya sendiri, bukan kepercayaan ke pemanggil.
	ListEligibleCandidates(ctx context.Context, pathID uuid.UUID) ([]Candidate, error)

	CountSelectionResults(ctx context.Context, pathID uuid.UUID) (int64, error)

	InsertSelectionResult(ctx context.Context, res *selModel.SelectionResultModel) error
	InsertSelectionResultDetail(ctx context.Context, det *selModel.SelectionResultDetailModel) error
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status appModel.ApplicationStatus) error

	// LockPath menahan lock eksklusif scoped per jalur sampai transaksi selesai
	// (Postgres: pg_advisory_xact_lock). Dua finalisasi jalur yang sama tidak
	// pernah sama-sama commit; jalur berbeda tetap paralel.
	LockPath(ctx context.Context, pathID uuid.UUID) error

	// WithinTx menjalankan fn dalam SATU transaksi; error apa pun dari fn
	// membatalkan seluruhnya (unit of work).
	WithinTx(ctx context.Context, fn func(txStore Store) error) error
}
