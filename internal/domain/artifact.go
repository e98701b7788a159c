package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Artifact naming. The timestamp layout sorts lexically in creation order.
const (
	ArtifactPrefix    = "attendance_template-"
	ArtifactExt       = ".pdf"
	ArtifactTimestamp = "2006-01-02_15-04-05"
)

// Artifact is a generated sign-in sheet persisted by the artifact store.
// Name is the only identity; there is no index beyond the directory listing.
type Artifact struct {
	Name      string
	CreatedAt time.Time
	Size      int64
}

// DeleteOutcome distinguishes the two non-error results of a delete.
type DeleteOutcome int

const (
	// Deleted means the artifact existed and has been removed.
	Deleted DeleteOutcome = iota + 1
	// AlreadyAbsent means there was nothing to remove.
	AlreadyAbsent
)

func (o DeleteOutcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case AlreadyAbsent:
		return "already_absent"
	default:
		return "unknown"
	}
}

// ArtifactName returns the file name for an artifact generated at t.
// The timestamp has second resolution and is rendered in UTC.
func ArtifactName(t time.Time) string {
	return ArtifactPrefix + t.UTC().Format(ArtifactTimestamp) + ArtifactExt
}

// ArtifactTime recovers the creation time encoded in an artifact name.
// ok is false when the name does not follow the naming scheme.
func ArtifactTime(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, ArtifactPrefix) || !strings.HasSuffix(name, ArtifactExt) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, ArtifactPrefix), ArtifactExt)
	t, err := time.Parse(ArtifactTimestamp, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidateArtifactName rejects names that could resolve outside the artifact
// directory or that do not refer to an artifact file. It never touches the
// filesystem. Failures wrap ErrValidation.
func ValidateArtifactName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: artifact name is required", ErrValidation)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: artifact name must not contain path separators", ErrValidation)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: artifact name must not contain parent references", ErrValidation)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: artifact name must not be hidden", ErrValidation)
	case filepath.Base(name) != name || filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return fmt.Errorf("%w: artifact name must be a bare file name", ErrValidation)
	case !strings.HasSuffix(name, ArtifactExt):
		return fmt.Errorf("%w: artifact name must end in %s", ErrValidation, ArtifactExt)
	}
	return nil
}
