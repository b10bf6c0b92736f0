// file: internals/features/admission/selection/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "ppdbku_backend/internals/features/admission/applications/model"
	pathModel "ppdbku_backend/internals/features/admission/paths/model"
	selModel "ppdbku_backend/internals/features/admission/selection/model"
	"ppdbku_backend/internals/features/admission/selection/service"
	helper "ppdbku_backend/internals/helpers"
)

// placeholder nama kalau pendaftar tidak mengisi nama
const noNamePlaceholder = "(tanpa nama)"

// GormStore: implementasi service.Store di atas GORM/Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

var _ service.Store = (*GormStore)(nil)

func (s *GormStore) GetAdmissionPath(ctx context.Context, pathID uuid.UUID) (service.PathInfo, error) {
	var m pathModel.AdmissionPathModel
	err := s.DB.WithContext(ctx).
		Select("admission_path_id", "admission_path_quota").
		Where("admission_path_id = ?", pathID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.PathInfo{}, service.ErrPathNotFound
		}
		return service.PathInfo{}, err
	}
	return service.PathInfo{ID: m.AdmissionPathID, Quota: m.AdmissionPathQuota}, nil
}

// baris mentah hasil join applications × application_scores
type eligibleRow struct {
	ApplicationID          uuid.UUID
	ApplicationStudentName *string
	ApplicationDateOfBirth *time.Time
	ApplicationDistanceM   *float64
	ApplicationStatus      appModel.ApplicationStatus
	ScoreValue             *float64
}

func (s *GormStore) ListEligibleCandidates(ctx context.Context, pathID uuid.UUID) ([]service.Candidate, error) {
	var rows []eligibleRow

	// Filter eligibility ditulis di query-nya sendiri (defensive re-check):
	// status verified + skor final, soft-delete diabaikan.
	err := s.DB.WithContext(ctx).
		Table("applications AS a").
		Select(`
			a.application_id            AS application_id,
			a.application_student_name  AS application_student_name,
			a.application_date_of_birth AS application_date_of_birth,
			a.application_distance_m    AS application_distance_m,
			a.application_status        AS application_status,
			s.application_score_value   AS score_value
		`).
		Joins("JOIN application_scores s ON s.application_score_application_id = a.application_id").
		Where("a.application_path_id = ?", pathID).
		Where("a.application_status = ?", appModel.ApplicationVerified).
		Where("s.application_score_is_final = TRUE").
		Where("a.application_deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]service.Candidate, 0, len(rows))
	for _, r := range rows {
		name := noNamePlaceholder
		if r.ApplicationStudentName != nil && *r.ApplicationStudentName != "" {
			name = *r.ApplicationStudentName
		}
		score := 0.0
		if r.ScoreValue != nil {
			score = *r.ScoreValue
		}
		out = append(out, service.Candidate{
			ID:          r.ApplicationID,
			Name:        name,
			Score:       score,
			DistanceM:   r.ApplicationDistanceM,
			DateOfBirth: r.ApplicationDateOfBirth,
			AgeYears:    helper.AgeYearsPtr(r.ApplicationDateOfBirth, now),
			Status:      r.ApplicationStatus,
		})
	}
	return out, nil
}

func (s *GormStore) CountSelectionResults(ctx context.Context, pathID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&selModel.SelectionResultModel{}).
		Where("selection_result_path_id = ?", pathID).
		Count(&n).Error
	return n, err
}

func (s *GormStore) InsertSelectionResult(ctx context.Context, res *selModel.SelectionResultModel) error {
	return s.DB.WithContext(ctx).Create(res).Error
}

func (s *GormStore) InsertSelectionResultDetail(ctx context.Context, det *selModel.SelectionResultDetailModel) error {
	return s.DB.WithContext(ctx).Create(det).Error
}

func (s *GormStore) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status appModel.ApplicationStatus) error {
	return s.DB.WithContext(ctx).
		Model(&appModel.ApplicationModel{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]any{
			"application_status":     status,
			"application_updated_at": time.Now(),
		}).Error
}

// LockPath: advisory lock transaction-scoped per jalur. hashtext() memetakan
// UUID ke int4; lock lepas otomatis saat commit/rollback.
func (s *GormStore) LockPath(ctx context.Context, pathID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", pathID.String()).Error
}

// WithinTx: satu transaksi untuk satu unit of work; fn menerima Store
// ber-scope transaksi. Error dari fn → rollback dan diteruskan apa adanya.
func (s *GormStore) WithinTx(ctx context.Context, fn func(txStore service.Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
