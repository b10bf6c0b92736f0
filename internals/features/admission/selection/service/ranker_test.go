package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func f64(v float64) *float64 { return &v }

func dob(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	cands := []Candidate{
		{ID: uuid.New(), Name: "B", Score: 70},
		{ID: uuid.New(), Name: "A", Score: 90},
		{ID: uuid.New(), Name: "C", Score: 80},
	}

	ranked, _, err := Rank(cands, 3, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	want := []float64{90, 80, 70}
	for i, rc := range ranked {
		if rc.Score != want[i] {
			t.Errorf("rank %d: expected score %v, got %v", i+1, want[i], rc.Score)
		}
	}
}

// Skenario: skor [90, 70, 85, 85], jarak [5000, 100, 100, 1000].
// 90 pertama, dua kandidat 85 diurutkan by jarak, 70 terakhir.
func TestRank_ScoreTieBrokenByDistance(t *testing.T) {
	idNear := uuid.New()
	idFar := uuid.New()
	cands := []Candidate{
		{ID: uuid.New(), Name: "top", Score: 90, DistanceM: f64(5000)},
		{ID: uuid.New(), Name: "last", Score: 70, DistanceM: f64(100)},
		{ID: idNear, Name: "near", Score: 85, DistanceM: f64(100)},
		{ID: idFar, Name: "far", Score: 85, DistanceM: f64(1000)},
	}

	ranked, _, err := Rank(cands, 4, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	if ranked[0].Score != 90 {
		t.Errorf("rank 1 should be score 90, got %v", ranked[0].Score)
	}
	if ranked[1].ID != idNear {
		t.Errorf("rank 2 should be the closer score-85 candidate")
	}
	if ranked[2].ID != idFar {
		t.Errorf("rank 3 should be the farther score-85 candidate")
	}
	if ranked[3].Score != 70 {
		t.Errorf("rank 4 should be score 70, got %v", ranked[3].Score)
	}
}

func TestRank_ScoreDistanceTieBrokenByAge(t *testing.T) {
	older := uuid.New()
	younger := uuid.New()
	cands := []Candidate{
		{ID: younger, Score: 85, DistanceM: f64(500), DateOfBirth: dob(2012, 6, 1)},
		{ID: older, Score: 85, DistanceM: f64(500), DateOfBirth: dob(2011, 1, 15)},
	}

	ranked, _, err := Rank(cands, 2, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != older {
		t.Errorf("older candidate (earlier DOB) should rank first")
	}
}

// Tanpa DOB diperlakukan sebagai termuda, bukan error.
func TestRank_NilBirthDateRanksAsYoungest(t *testing.T) {
	withDOB := uuid.New()
	noDOB := uuid.New()
	cands := []Candidate{
		{ID: noDOB, Score: 85, DistanceM: f64(500)},
		{ID: withDOB, Score: 85, DistanceM: f64(500), DateOfBirth: dob(2012, 6, 1)},
	}

	ranked, _, err := Rank(cands, 2, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != withDOB {
		t.Errorf("candidate with DOB should beat candidate without DOB")
	}
}

func TestRank_NilDistanceRanksAfterAnyDistance(t *testing.T) {
	near := uuid.New()
	unknown := uuid.New()
	cands := []Candidate{
		{ID: unknown, Score: 85},
		{ID: near, Score: 85, DistanceM: f64(99999)},
	}

	ranked, _, err := Rank(cands, 2, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != near {
		t.Errorf("any known distance should beat unknown distance")
	}
}

// Semua atribut seri → tiebreak terakhir by ID, tetap deterministik.
func TestRank_FullTieBrokenByID(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	cands := []Candidate{
		{ID: b, Score: 85, DistanceM: f64(500), DateOfBirth: dob(2012, 1, 1)},
		{ID: a, Score: 85, DistanceM: f64(500), DateOfBirth: dob(2012, 1, 1)},
	}

	ranked, _, err := Rank(cands, 2, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != a || ranked[1].ID != b {
		t.Errorf("full tie should order by candidate ID ascending")
	}
}

func TestRank_DenseRanks(t *testing.T) {
	var cands []Candidate
	for i := 0; i < 25; i++ {
		cands = append(cands, Candidate{ID: uuid.New(), Score: float64(i % 7)})
	}

	ranked, _, err := Rank(cands, 5, 5)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	seen := map[int]bool{}
	for _, rc := range ranked {
		if seen[rc.Rank] {
			t.Errorf("duplicate rank %d", rc.Rank)
		}
		seen[rc.Rank] = true
	}
	for r := 1; r <= len(cands); r++ {
		if !seen[r] {
			t.Errorf("missing rank %d", r)
		}
	}
}

// quotaAccepted=2, quotaReserved=2 untuk 5 kandidat → 2 accepted, 2 reserved, 1 rejected.
func TestRank_TierPartition(t *testing.T) {
	var cands []Candidate
	for i := 0; i < 5; i++ {
		cands = append(cands, Candidate{ID: uuid.New(), Score: float64(100 - i)})
	}

	ranked, totals, err := Rank(cands, 2, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	wantTiers := []Tier{TierAccepted, TierAccepted, TierReserved, TierReserved, TierRejected}
	for i, rc := range ranked {
		if rc.Tier != wantTiers[i] {
			t.Errorf("rank %d: expected tier %s, got %s", rc.Rank, wantTiers[i], rc.Tier)
		}
	}
	if totals.Accepted != 2 || totals.Reserved != 2 || totals.Rejected != 1 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.Accepted+totals.Reserved+totals.Rejected != len(cands) {
		t.Errorf("tier totals must sum to N")
	}
}

func TestRank_QuotaLargerThanPool(t *testing.T) {
	cands := []Candidate{
		{ID: uuid.New(), Score: 80},
		{ID: uuid.New(), Score: 70},
	}

	_, totals, err := Rank(cands, 10, 5)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if totals.Accepted != 2 || totals.Reserved != 0 || totals.Rejected != 0 {
		t.Errorf("all candidates should be accepted when quota exceeds pool: %+v", totals)
	}
}

func TestRank_NegativeQuotaRejected(t *testing.T) {
	if _, _, err := Rank(nil, -1, 0); err != ErrInvalidQuota {
		t.Errorf("expected ErrInvalidQuota for negative quotaAccepted, got %v", err)
	}
	if _, _, err := Rank(nil, 0, -1); err != ErrInvalidQuota {
		t.Errorf("expected ErrInvalidQuota for negative quotaReserved, got %v", err)
	}
}

func TestRank_EmptyPool(t *testing.T) {
	ranked, totals, err := Rank(nil, 3, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("expected empty ranking")
	}
	if totals != (TierTotals{}) {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

// Dua kali jalan atas data sama → hasil identik (determinisme), dan input tidak dimutasi.
func TestRank_Deterministic(t *testing.T) {
	var cands []Candidate
	for i := 0; i < 30; i++ {
		cands = append(cands, Candidate{
			ID:          uuid.New(),
			Score:       float64(i % 4),
			DistanceM:   f64(float64((i * 37) % 900)),
			DateOfBirth: dob(2010+(i%3), 1+(i%12), 1),
		})
	}
	orig := make([]Candidate, len(cands))
	copy(orig, cands)

	first, _, err := Rank(cands, 10, 5)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	second, _, err := Rank(cands, 10, 5)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID || first[i].Rank != second[i].Rank || first[i].Tier != second[i].Tier {
			t.Fatalf("ranking not deterministic at position %d", i)
		}
	}
	for i := range cands {
		if cands[i].ID != orig[i].ID {
			t.Fatalf("Rank mutated its input slice")
		}
	}
}
