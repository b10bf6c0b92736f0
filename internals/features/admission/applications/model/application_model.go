// file: internals/features/admission/applications/model/application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM mapping (Postgres: application_status)
====================================================== */

type ApplicationStatus string

const (
	ApplicationDraft      ApplicationStatus = "draft"
	ApplicationSubmitted  ApplicationStatus = "submitted"
	ApplicationVerified   ApplicationStatus = "verified"
	ApplicationAccepted   ApplicationStatus = "accepted"
	ApplicationWaitlisted ApplicationStatus = "waitlisted"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationCanceled   ApplicationStatus = "canceled"
)

/* ======================================================
   Model: applications
   Satu pendaftaran calon siswa pada satu jalur.
   Eligible untuk ranking: status 'verified' + skor final.
====================================================== */

type ApplicationModel struct {
	ApplicationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:application_id" json:"application_id"`
	ApplicationPathID uuid.UUID `gorm:"not null;index;column:application_path_id" json:"application_path_id"`

	ApplicationStudentName *string    `gorm:"column:application_student_name" json:"application_student_name"`
	ApplicationDateOfBirth *time.Time `gorm:"type:date;column:application_date_of_birth" json:"application_date_of_birth"`

	// jarak rumah → sekolah dalam meter (nullable; dipakai tiebreak zonasi)
	ApplicationDistanceM *float64 `gorm:"column:application_distance_m" json:"application_distance_m"`

	ApplicationStatus ApplicationStatus `gorm:"type:application_status;not null;default:'draft';column:application_status" json:"application_status"`

	// snapshot metadata dokumen yang diunggah via layanan lain
	ApplicationDocumentSnapshot datatypes.JSON `gorm:"column:application_document_snapshot" json:"application_document_snapshot"`

	// jejak waktu (audit)
	ApplicationSubmittedAt *time.Time `gorm:"column:application_submitted_at" json:"application_submitted_at"`
	ApplicationVerifiedAt  *time.Time `gorm:"column:application_verified_at" json:"application_verified_at"`

	ApplicationCreatedAt time.Time      `gorm:"not null;default:now();column:application_created_at" json:"application_created_at"`
	ApplicationUpdatedAt time.Time      `gorm:"not null;default:now();column:application_updated_at" json:"application_updated_at"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"application_deleted_at"`
}

func (ApplicationModel) TableName() string { return "applications" }
