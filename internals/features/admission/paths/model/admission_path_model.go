// file: internals/features/admission/paths/model/admission_path_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM mapping (Postgres: admission_path_status)
====================================================== */

type AdmissionPathStatus string

const (
	PathDraft    AdmissionPathStatus = "draft"
	PathOpen     AdmissionPathStatus = "open"
	PathClosed   AdmissionPathStatus = "closed"
	PathArchived AdmissionPathStatus = "archived"
)

/* ======================================================
   Model: admission_paths
   Satu jalur pendaftaran (zonasi/prestasi/afirmasi/dll)
   dengan kuota kursinya sendiri.
====================================================== */

type AdmissionPathModel struct {
	AdmissionPathID   uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_path_id" json:"admission_path_id"`
	AdmissionPathName string              `gorm:"not null;column:admission_path_name" json:"admission_path_name"`
	AdmissionPathSlug *string             `gorm:"uniqueIndex;column:admission_path_slug" json:"admission_path_slug"`

	// kuota kursi; engine seleksi hanya MEMBACA kolom ini
	AdmissionPathQuota int                `gorm:"not null;check:admission_path_quota > 0;column:admission_path_quota" json:"admission_path_quota"`

	AdmissionPathStatus AdmissionPathStatus `gorm:"type:admission_path_status;not null;default:'draft';column:admission_path_status" json:"admission_path_status"`

	// kode dokumen yang wajib dilampirkan pendaftar (kk, akta, rapor, dst.)
	AdmissionPathRequiredDocuments pq.StringArray `gorm:"type:text[];column:admission_path_required_documents" json:"admission_path_required_documents"`

	AdmissionPathDescription *string `gorm:"column:admission_path_description" json:"admission_path_description"`

	AdmissionPathCreatedAt time.Time      `gorm:"not null;default:now();column:admission_path_created_at" json:"admission_path_created_at"`
	AdmissionPathUpdatedAt time.Time      `gorm:"not null;default:now();column:admission_path_updated_at" json:"admission_path_updated_at"`
	AdmissionPathDeletedAt gorm.DeletedAt `gorm:"column:admission_path_deleted_at;index" json:"admission_path_deleted_at"`
}

func (AdmissionPathModel) TableName() string { return "admission_paths" }
