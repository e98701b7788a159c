package repo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// ArtifactRepo defines the storage operations for generated sign-in sheets.
// The backing directory listing is the only index: there is no metadata file.
type ArtifactRepo interface {
	// Create persists data under a new timestamped name and returns the
	// artifact. Readers never observe a partially written file.
	// Returns domain.ErrConflict if an artifact with the same name exists.
	Create(ctx context.Context, data []byte) (domain.Artifact, error)

	// List returns all artifacts ordered oldest first. Entries that are not
	// artifact files are skipped.
	List(ctx context.Context) ([]domain.Artifact, error)

	// Read returns the bytes of the named artifact.
	// Returns domain.ErrValidation for unsafe names and domain.ErrNotFound
	// if the artifact does not exist.
	Read(ctx context.Context, name string) ([]byte, error)

	// Delete removes the named artifact, reporting whether it was there.
	// Returns domain.ErrValidation for unsafe names.
	Delete(ctx context.Context, name string) (domain.DeleteOutcome, error)
}

// tempPattern names in-flight writes. The leading dot and the .tmp suffix
// keep them out of List.
const tempPattern = "." + domain.ArtifactPrefix + "*.tmp"

// fsArtifactRepo stores artifacts as files in a single flat directory.
type fsArtifactRepo struct {
	dir string
	now func() time.Time
}

// NewArtifactRepo constructs an ArtifactRepo rooted at dir, creating the
// directory if needed. now supplies the generation timestamp; pass time.Now
// in production and a fixed clock in tests.
func NewArtifactRepo(dir string, now func() time.Time) (ArtifactRepo, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewArtifactRepo: create dir: %w", err)
	}
	return &fsArtifactRepo{dir: dir, now: now}, nil
}

// Create writes data to a temp file in the artifact directory, syncs it, and
// hard-links it to the final name. Link fails when the target exists, so a
// same-second collision surfaces as ErrConflict instead of overwriting.
// The temp file is always removed, leaving either the full artifact or nothing.
func (r *fsArtifactRepo) Create(ctx context.Context, data []byte) (domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: %w", err)
	}

	created := r.now().UTC().Truncate(time.Second)
	name := domain.ArtifactName(created)

	tmp, err := os.CreateTemp(r.dir, tempPattern)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: close: %w", err)
	}

	if err := os.Link(tmpPath, filepath.Join(r.dir, name)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: %s: %w", name, domain.ErrConflict)
		}
		return domain.Artifact{}, fmt.Errorf("repo.ArtifactRepo.Create: link: %w", err)
	}

	return domain.Artifact{Name: name, CreatedAt: created, Size: int64(len(data))}, nil
}

// List reads the directory and keeps regular, non-hidden *.pdf files.
// os.ReadDir returns entries sorted by name, and names embed a sortable
// timestamp, so the result is already in creation order.
func (r *fsArtifactRepo) List(ctx context.Context) ([]domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.List: %w", err)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.List: %w", err)
	}

	artifacts := []domain.Artifact{}
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, domain.ArtifactExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Deleted between ReadDir and Info.
				continue
			}
			return nil, fmt.Errorf("repo.ArtifactRepo.List: stat %s: %w", name, err)
		}
		created, ok := domain.ArtifactTime(name)
		if !ok {
			created = info.ModTime().UTC()
		}
		artifacts = append(artifacts, domain.Artifact{Name: name, CreatedAt: created, Size: info.Size()})
	}
	return artifacts, nil
}

// Read validates name before touching the filesystem. Only regular files
// count as artifacts: a symlink or directory under an artifact name reads as
// not found, so Read never follows a link out of the directory.
func (r *fsArtifactRepo) Read(ctx context.Context, name string) ([]byte, error) {
	if err := domain.ValidateArtifactName(name); err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %w", err)
	}

	path := filepath.Join(r.dir, name)
	info, err := r.lstatArtifact(path)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %s: %w", name, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.ArtifactRepo.Read: %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %w", err)
	}
	defer f.Close()

	// The entry may have been swapped between Lstat and Open.
	opened, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %w", err)
	}
	if !os.SameFile(info, opened) {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %s: %w", name, domain.ErrNotFound)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtifactRepo.Read: %w", err)
	}
	return data, nil
}

// lstatArtifact returns the entry's info if it is a regular file and
// domain.ErrNotFound otherwise.
func (r *fsArtifactRepo) lstatArtifact(path string) (fs.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, domain.ErrNotFound
	}
	return info, nil
}

// Delete validates name before touching the filesystem. A missing file is a
// normal outcome, not an error. Entries that are not regular files are not
// artifacts and are left alone.
func (r *fsArtifactRepo) Delete(ctx context.Context, name string) (domain.DeleteOutcome, error) {
	if err := domain.ValidateArtifactName(name); err != nil {
		return 0, fmt.Errorf("repo.ArtifactRepo.Delete: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("repo.ArtifactRepo.Delete: %w", err)
	}

	path := filepath.Join(r.dir, name)
	if _, err := r.lstatArtifact(path); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AlreadyAbsent, nil
		}
		return 0, fmt.Errorf("repo.ArtifactRepo.Delete: %w", err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AlreadyAbsent, nil
		}
		return 0, fmt.Errorf("repo.ArtifactRepo.Delete: %w", err)
	}
	return domain.Deleted, nil
}
