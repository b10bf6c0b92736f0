package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	appModel "ppdbku_backend/internals/features/admission/applications/model"
	selModel "ppdbku_backend/internals/features/admission/selection/model"
)

/* ======================================================
   Fake store in-memory dengan semantik rollback
====================================================== */

type fakeStore struct {
	paths      map[uuid.UUID]PathInfo
	candidates map[uuid.UUID][]Candidate

	results  []selModel.SelectionResultModel
	details  []selModel.SelectionResultDetailModel
	statuses map[uuid.UUID]appModel.ApplicationStatus

	// simulasi kegagalan: gagal saat insert detail ke-N (1-based; 0 = tidak pernah)
	failOnDetailInsert int
	detailInserts      int

	lockedPaths []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		paths:      map[uuid.UUID]PathInfo{},
		candidates: map[uuid.UUID][]Candidate{},
		statuses:   map[uuid.UUID]appModel.ApplicationStatus{},
	}
}

func (f *fakeStore) GetAdmissionPath(_ context.Context, pathID uuid.UUID) (PathInfo, error) {
	p, ok := f.paths[pathID]
	if !ok {
		return PathInfo{}, ErrPathNotFound
	}
	return p, nil
}

func (f *fakeStore) ListEligibleCandidates(_ context.Context, pathID uuid.UUID) ([]Candidate, error) {
	return f.candidates[pathID], nil
}

func (f *fakeStore) CountSelectionResults(_ context.Context, pathID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.results {
		if r.SelectionResultPathID == pathID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) InsertSelectionResult(_ context.Context, res *selModel.SelectionResultModel) error {
	if res.SelectionResultID == uuid.Nil {
		res.SelectionResultID = uuid.New()
	}
	f.results = append(f.results, *res)
	return nil
}

func (f *fakeStore) InsertSelectionResultDetail(_ context.Context, det *selModel.SelectionResultDetailModel) error {
	f.detailInserts++
	if f.failOnDetailInsert > 0 && f.detailInserts >= f.failOnDetailInsert {
		return errors.New("storage failure (simulated)")
	}
	f.details = append(f.details, *det)
	return nil
}

func (f *fakeStore) UpdateApplicationStatus(_ context.Context, applicationID uuid.UUID, status appModel.ApplicationStatus) error {
	f.statuses[applicationID] = status
	return nil
}

func (f *fakeStore) LockPath(_ context.Context, pathID uuid.UUID) error {
	f.lockedPaths = append(f.lockedPaths, pathID)
	return nil
}

// WithinTx: snapshot → jalankan fn → restore saat error (meniru rollback DB).
func (f *fakeStore) WithinTx(_ context.Context, fn func(txStore Store) error) error {
	resultsBak := append([]selModel.SelectionResultModel(nil), f.results...)
	detailsBak := append([]selModel.SelectionResultDetailModel(nil), f.details...)
	statusesBak := make(map[uuid.UUID]appModel.ApplicationStatus, len(f.statuses))
	for k, v := range f.statuses {
		statusesBak[k] = v
	}

	if err := fn(f); err != nil {
		f.results = resultsBak
		f.details = detailsBak
		f.statuses = statusesBak
		return err
	}
	return nil
}

/* ======================================================
   Fixtures
====================================================== */

func seedPath(f *fakeStore, quota int, cands ...Candidate) uuid.UUID {
	pathID := uuid.New()
	f.paths[pathID] = PathInfo{ID: pathID, Quota: quota}
	f.candidates[pathID] = cands
	for _, c := range cands {
		f.statuses[c.ID] = appModel.ApplicationVerified
	}
	return pathID
}

func testEngine(f *fakeStore) *Engine {
	return &Engine{Store: f, Now: func() time.Time {
		return time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	}}
}

/* ======================================================
   DraftRanking
====================================================== */

func TestDraftRanking_DefaultsToPathQuota(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 2,
		Candidate{ID: uuid.New(), Score: 90},
		Candidate{ID: uuid.New(), Score: 80},
		Candidate{ID: uuid.New(), Score: 70},
	)

	draft, err := testEngine(f).DraftRanking(context.Background(), pathID, nil, nil)
	if err != nil {
		t.Fatalf("DraftRanking failed: %v", err)
	}
	if draft.QuotaAccepted != 2 || draft.QuotaReserved != 0 {
		t.Errorf("expected defaults quota=2/reserved=0, got %d/%d", draft.QuotaAccepted, draft.QuotaReserved)
	}
	if draft.Totals.Accepted != 2 || draft.Totals.Rejected != 1 {
		t.Errorf("unexpected totals: %+v", draft.Totals)
	}
}

func TestDraftRanking_PathNotFound(t *testing.T) {
	f := newFakeStore()
	_, err := testEngine(f).DraftRanking(context.Background(), uuid.New(), nil, nil)
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("expected ErrPathNotFound, got %v", err)
	}
}

func TestDraftRanking_HasNoSideEffects(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 1, Candidate{ID: uuid.New(), Score: 90})

	for i := 0; i < 3; i++ {
		if _, err := testEngine(f).DraftRanking(context.Background(), pathID, nil, nil); err != nil {
			t.Fatalf("DraftRanking failed: %v", err)
		}
	}
	if len(f.results) != 0 || len(f.details) != 0 {
		t.Errorf("draft ranking must not persist anything")
	}
	for _, st := range f.statuses {
		if st != appModel.ApplicationVerified {
			t.Errorf("draft ranking must not mutate statuses")
		}
	}
}

/* ======================================================
   Finalize
====================================================== */

func TestFinalize_HappyPath(t *testing.T) {
	f := newFakeStore()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	var cands []Candidate
	for i, id := range ids {
		cands = append(cands, Candidate{ID: id, Name: "c", Score: float64(100 - i)})
	}
	pathID := seedPath(f, 2, cands...)
	actor := uuid.New()

	res, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: pathID, QuotaAccepted: 2, QuotaReserved: 2, ActorID: actor,
	})
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if res.SelectionResultTotalCandidates != 5 {
		t.Errorf("expected totalCandidates=5, got %d", res.SelectionResultTotalCandidates)
	}
	if res.SelectionResultFinalizedBy != actor {
		t.Errorf("actor not recorded")
	}
	if len(f.results) != 1 {
		t.Fatalf("expected exactly one SelectionResult, got %d", len(f.results))
	}
	if len(f.details) != 5 {
		t.Fatalf("expected 5 detail rows, got %d", len(f.details))
	}

	// rank 1-2 accepted, 3-4 waitlisted, 5 rejected
	wantStatus := []appModel.ApplicationStatus{
		appModel.ApplicationAccepted,
		appModel.ApplicationAccepted,
		appModel.ApplicationWaitlisted,
		appModel.ApplicationWaitlisted,
		appModel.ApplicationRejected,
	}
	for i, id := range ids {
		if f.statuses[id] != wantStatus[i] {
			t.Errorf("candidate %d: expected status %s, got %s", i, wantStatus[i], f.statuses[id])
		}
	}

	// detail ranks harus rapat 1..5 dan unik
	seen := map[int]bool{}
	for _, d := range f.details {
		if d.SelectionResultDetailResultID != res.SelectionResultID {
			t.Errorf("detail not linked to result")
		}
		if seen[d.SelectionResultDetailRank] {
			t.Errorf("duplicate rank %d", d.SelectionResultDetailRank)
		}
		seen[d.SelectionResultDetailRank] = true
	}
	for r := 1; r <= 5; r++ {
		if !seen[r] {
			t.Errorf("missing rank %d in details", r)
		}
	}

	if len(f.lockedPaths) != 1 || f.lockedPaths[0] != pathID {
		t.Errorf("finalize must take the path-scoped lock")
	}
}

func TestFinalize_NegativeQuotaFailsFast(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 2, Candidate{ID: uuid.New(), Score: 90})

	_, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: pathID, QuotaAccepted: -1, QuotaReserved: 0, ActorID: uuid.New(),
	})
	if !errors.Is(err, ErrInvalidQuota) {
		t.Fatalf("expected ErrInvalidQuota, got %v", err)
	}
	if len(f.results) != 0 || len(f.details) != 0 {
		t.Errorf("validation failure must not write anything")
	}
	if len(f.lockedPaths) != 0 {
		t.Errorf("validation must happen before any transaction work")
	}
}

func TestFinalize_PathNotFound(t *testing.T) {
	f := newFakeStore()
	_, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: uuid.New(), QuotaAccepted: 1, ActorID: uuid.New(),
	})
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("expected ErrPathNotFound, got %v", err)
	}
	if len(f.results) != 0 {
		t.Errorf("no writes expected")
	}
}

// Nol kandidat eligible tetap sukses: snapshot dengan totalCandidates=0, tanpa detail.
func TestFinalize_EmptyPoolSucceeds(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 3)

	res, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: pathID, QuotaAccepted: 3, QuotaReserved: 1, ActorID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if res.SelectionResultTotalCandidates != 0 {
		t.Errorf("expected totalCandidates=0, got %d", res.SelectionResultTotalCandidates)
	}
	if len(f.details) != 0 {
		t.Errorf("expected zero detail rows")
	}
	if len(f.results) != 1 {
		t.Errorf("expected one SelectionResult")
	}
}

// Atomicity: gagal di insert detail TERAKHIR → tidak ada result, detail,
// maupun mutasi status yang tersisa.
func TestFinalize_RollsBackOnDetailInsertFailure(t *testing.T) {
	f := newFakeStore()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	var cands []Candidate
	for i, id := range ids {
		cands = append(cands, Candidate{ID: id, Score: float64(90 - i)})
	}
	pathID := seedPath(f, 2, cands...)
	f.failOnDetailInsert = 3 // gagal pada detail terakhir

	_, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: pathID, QuotaAccepted: 2, QuotaReserved: 0, ActorID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected finalize to fail")
	}

	if len(f.results) != 0 {
		t.Errorf("rollback must leave zero SelectionResult rows, got %d", len(f.results))
	}
	if len(f.details) != 0 {
		t.Errorf("rollback must leave zero detail rows, got %d", len(f.details))
	}
	for _, id := range ids {
		if f.statuses[id] != appModel.ApplicationVerified {
			t.Errorf("rollback must restore candidate statuses")
		}
	}
}

func TestFinalize_SecondCallConflicts(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 1, Candidate{ID: uuid.New(), Score: 90})
	e := testEngine(f)
	in := FinalizeInput{PathID: pathID, QuotaAccepted: 1, ActorID: uuid.New()}

	if _, err := e.Finalize(context.Background(), in); err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}
	if _, err := e.Finalize(context.Background(), in); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("second finalize should conflict, got %v", err)
	}
	if len(f.results) != 1 {
		t.Errorf("conflict must not create a second snapshot")
	}
}

// Force: finalisasi ulang eksplisit menambah snapshot historis baru,
// tanpa menyentuh snapshot lama.
func TestFinalize_ForceAppendsHistoricalSnapshot(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 1, Candidate{ID: uuid.New(), Score: 90})
	e := testEngine(f)

	first, err := e.Finalize(context.Background(), FinalizeInput{PathID: pathID, QuotaAccepted: 1, ActorID: uuid.New()})
	if err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}

	second, err := e.Finalize(context.Background(), FinalizeInput{PathID: pathID, QuotaAccepted: 1, ActorID: uuid.New(), Force: true})
	if err != nil {
		t.Fatalf("forced finalize failed: %v", err)
	}

	if len(f.results) != 2 {
		t.Errorf("expected two historical snapshots, got %d", len(f.results))
	}
	if first.SelectionResultID == second.SelectionResultID {
		t.Errorf("forced finalize must create a new snapshot, not reuse the old one")
	}
}

// Kuota yang dipakai saat finalisasi tersimpan apa adanya, walau beda dari kuota live jalur.
func TestFinalize_RecordsQuotasAsUsed(t *testing.T) {
	f := newFakeStore()
	pathID := seedPath(f, 100, Candidate{ID: uuid.New(), Score: 90})

	res, err := testEngine(f).Finalize(context.Background(), FinalizeInput{
		PathID: pathID, QuotaAccepted: 7, QuotaReserved: 3, ActorID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if res.SelectionResultQuotaAccepted != 7 || res.SelectionResultQuotaReserved != 3 {
		t.Errorf("quotas as finalized must be recorded, got %d/%d",
			res.SelectionResultQuotaAccepted, res.SelectionResultQuotaReserved)
	}
}
