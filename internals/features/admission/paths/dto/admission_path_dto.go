// file: internals/features/admission/paths/dto/admission_path_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "ppdbku_backend/internals/features/admission/paths/model"
)

/* ======================================================
   Requests
====================================================== */

// Create request body (POST /admission-paths)
type CreateAdmissionPathRequest struct {
	Name              string   `json:"admission_path_name" validate:"required,min=3,max=120"`
	Slug              *string  `json:"admission_path_slug" validate:"omitempty,max=120"`
	Quota             int      `json:"admission_path_quota" validate:"required,gt=0"`
	RequiredDocuments []string `json:"admission_path_required_documents"`
	Description       *string  `json:"admission_path_description"`
}

func (r CreateAdmissionPathRequest) ToModel() m.AdmissionPathModel {
	return m.AdmissionPathModel{
		AdmissionPathName:              r.Name,
		AdmissionPathSlug:              r.Slug,
		AdmissionPathQuota:             r.Quota,
		AdmissionPathStatus:            m.PathDraft,
		AdmissionPathRequiredDocuments: pq.StringArray(r.RequiredDocuments),
		AdmissionPathDescription:       r.Description,
	}
}

// Partial update (PATCH /:id)
type UpdateAdmissionPathRequest struct {
	Name              *string  `json:"admission_path_name" validate:"omitempty,min=3,max=120"`
	Quota             *int     `json:"admission_path_quota" validate:"omitempty,gt=0"`
	RequiredDocuments []string `json:"admission_path_required_documents"`
	Description       *string  `json:"admission_path_description"`
}

func (r UpdateAdmissionPathRequest) Apply(mod *m.AdmissionPathModel) {
	if r.Name != nil {
		mod.AdmissionPathName = *r.Name
	}
	if r.Quota != nil {
		mod.AdmissionPathQuota = *r.Quota
	}
	if r.RequiredDocuments != nil {
		mod.AdmissionPathRequiredDocuments = pq.StringArray(r.RequiredDocuments)
	}
	if r.Description != nil {
		mod.AdmissionPathDescription = r.Description
	}
}

// Transisi status (PATCH /:id/status)
type UpdateAdmissionPathStatusRequest struct {
	Status m.AdmissionPathStatus `json:"admission_path_status" validate:"required,oneof=draft open closed archived"`
}

/* ======================================================
   Response
====================================================== */

type AdmissionPathResponse struct {
	AdmissionPathID                uuid.UUID             `json:"admission_path_id"`
	AdmissionPathName              string                `json:"admission_path_name"`
	AdmissionPathSlug              *string               `json:"admission_path_slug"`
	AdmissionPathQuota             int                   `json:"admission_path_quota"`
	AdmissionPathStatus            m.AdmissionPathStatus `json:"admission_path_status"`
	AdmissionPathRequiredDocuments []string              `json:"admission_path_required_documents"`
	AdmissionPathDescription       *string               `json:"admission_path_description"`
	AdmissionPathCreatedAt         time.Time             `json:"admission_path_created_at"`
	AdmissionPathUpdatedAt         time.Time             `json:"admission_path_updated_at"`
}

func FromAdmissionPathModel(mod m.AdmissionPathModel) AdmissionPathResponse {
	return AdmissionPathResponse{
		AdmissionPathID:                mod.AdmissionPathID,
		AdmissionPathName:              mod.AdmissionPathName,
		AdmissionPathSlug:              mod.AdmissionPathSlug,
		AdmissionPathQuota:             mod.AdmissionPathQuota,
		AdmissionPathStatus:            mod.AdmissionPathStatus,
		AdmissionPathRequiredDocuments: []string(mod.AdmissionPathRequiredDocuments),
		AdmissionPathDescription:       mod.AdmissionPathDescription,
		AdmissionPathCreatedAt:         mod.AdmissionPathCreatedAt,
		AdmissionPathUpdatedAt:         mod.AdmissionPathUpdatedAt,
	}
}
