// file: internals/features/admission/selection/service/ranker.go
package service

import (
	"sort"
	"strings"
	"time"
)

// Tier hasil klasifikasi satu kandidat ter-ranking.
type Tier string

const (
	TierAccepted Tier = "accepted"
	TierReserved Tier = "reserved"
	TierRejected Tier = "rejected"
)

// RankedCandidate: kandidat + rank 1-based + tier.
type RankedCandidate struct {
	Candidate
	Rank int
	Tier Tier
}

// TierTotals: agregat per tier; Accepted+Reserved+Rejected selalu == N.
type TierTotals struct {
	Accepted int
	Reserved int
	Rejected int
}

// Rank mengurutkan kandidat dengan comparator total-order lalu membagi tier
// terhadap kuota. Fungsi murni: tanpa side effect, deterministik untuk input
// yang sama, aman dipanggil berulang (draft ditampilkan ke user sebelum commit).
//
// Comparator (preferensi menurun):
//  1. skor lebih tinggi dulu
//  2. skor seri → jarak lebih dekat dulu (nil dianggap paling jauh)
//  3. masih seri → lebih tua dulu (tanggal lahir lebih awal; nil dianggap termuda)
//  4. masih seri → ID kandidat ascending, supaya urutan tidak pernah
//     bergantung urutan baris dari storage
func Rank(candidates []Candidate, quotaAccepted, quotaReserved int) ([]RankedCandidate, TierTotals, error) {
	if quotaAccepted < 0 || quotaReserved < 0 {
		return nil, TierTotals{}, ErrInvalidQuota
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.Slice(sorted, func(i, j int) bool {
		return candidateLess(sorted[i], sorted[j])
	})

	ranked := make([]RankedCandidate, len(sorted))
	var totals TierTotals
	for i, cand := range sorted {
		rank := i + 1
		tier := classify(rank, quotaAccepted, quotaReserved)
		switch tier {
		case TierAccepted:
			totals.Accepted++
		case TierReserved:
			totals.Reserved++
		default:
			totals.Rejected++
		}
		ranked[i] = RankedCandidate{Candidate: cand, Rank: rank, Tier: tier}
	}
	return ranked, totals, nil
}

// classify: rank <= qa → accepted; qa < rank <= qa+qr → reserved; sisanya rejected.
func classify(rank, quotaAccepted, quotaReserved int) Tier {
	switch {
	case rank <= quotaAccepted:
		return TierAccepted
	case rank <= quotaAccepted+quotaReserved:
		return TierReserved
	default:
		return TierRejected
	}
}

// candidateLess: true jika a harus di-ranking LEBIH TINGGI (lebih dulu) dari b.
func candidateLess(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if c := compareDistance(a.DistanceM, b.DistanceM); c != 0 {
		return c < 0
	}
	if c := compareBirthDate(a.DateOfBirth, b.DateOfBirth); c != 0 {
		return c < 0
	}
	return strings.Compare(a.ID.String(), b.ID.String()) < 0
}

// compareDistance: lebih kecil lebih baik; nil kalah dari nilai apa pun.
func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// compareBirthDate: lahir lebih awal (lebih tua) lebih baik; nil diperlakukan termuda.
func compareBirthDate(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
