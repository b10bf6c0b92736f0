package constants

import "fmt"

// Role dasar panitia PPDB
const (
	RoleUser      = "user"
	RoleCommittee = "committee"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

// Template pesan error role
const (
	ErrOnlyCommitteeCanAccess = "❌ Hanya panitia, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorCommittee(feature string) string {
	return fmt.Sprintf(ErrOnlyCommitteeCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleCommittee,
		RoleAdmin,
		RoleOwner,
	}

	// Role yang boleh mengelola jalur pendaftaran & seleksi
	AdmissionAdminRoles = []string{
		RoleCommittee,
		RoleAdmin,
		RoleOwner,
	}
)
