package types

// FileRole describes what part a file plays in the photo library.
type FileRole int

const (
	// RoleUnrecognized is the zero value: an extension outside every
	// configured set. Such files are reported and never placed.
	RoleUnrecognized FileRole = iota
	// RoleRaw is an unprocessed camera sensor file (.cr2, .dng, ...).
	RoleRaw
	// RolePreview is an out-of-camera JPEG counterpart to a raw file.
	RolePreview
	// RoleSidecar is an editor metadata file tied to a raw file by base name.
	RoleSidecar
)

// String returns a human readable name for the role.
func (r FileRole) String() string {
	switch r {
	case RoleRaw:
		return "raw"
	case RolePreview:
		return "preview"
	case RoleSidecar:
		return "sidecar"
	default:
		return "unrecognized"
	}
}
