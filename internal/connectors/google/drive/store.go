// Package drive implements the cloud storage port on Google Drive:
// year folders under a configured parent, one uploaded file per payslip.
package drive

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/aruiz-labs/nominas-cli/internal/connectors/google"
	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
)

// MimeTypeFolder is the Drive MIME type identifying folders.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// Store implements driven.FileStore on the Drive v3 API.
type Store struct {
	svc     *drive.Service
	limiter *google.RateLimiter
	parent  string
}

// NewStore creates a Store uploading under the given parent folder id.
func NewStore(svc *drive.Service, parentID string) *Store {
	return &Store{
		svc:     svc,
		limiter: google.NewRateLimiter(),
		parent:  parentID,
	}
}

// EnsureFolder returns the id of the folder named name directly under the
// parent, creating it when absent. More than one existing match is
// domain.ErrFolderAmbiguous: picking one silently would scatter uploads
// across duplicates.
func (s *Store) EnsureFolder(ctx context.Context, name string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	query := fmt.Sprintf(
		"name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), MimeTypeFolder, escapeQuery(s.parent),
	)
	list, err := s.svc.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(2).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("searching folder %q: %w", name, s.wrap(err))
	}

	switch len(list.Files) {
	case 0:
		return s.createFolder(ctx, name)
	case 1:
		return list.Files[0].Id, nil
	default:
		return "", fmt.Errorf("%w: folder %q under parent %s", domain.ErrFolderAmbiguous, name, s.parent)
	}
}

func (s *Store) createFolder(ctx context.Context, name string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	folder, err := s.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{s.parent},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("creating folder %q: %w", name, s.wrap(err))
	}
	return folder.Id, nil
}

// Upload stores the file at path under folderID and returns its id.
func (s *Store) Upload(ctx context.Context, folderID, path, name string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	file, err := s.svc.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Media(f).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", name, s.wrap(err))
	}
	return file.Id, nil
}

// wrap classifies an API error and starts the backoff window when the
// API reported rate limiting.
func (s *Store) wrap(err error) error {
	err = google.WrapError(err)
	if google.IsRateLimited(err) {
		s.limiter.RecordRateLimitError(0)
	}
	return err
}

// escapeQuery escapes a value for interpolation into a Drive query
// string, which uses single-quoted literals.
func escapeQuery(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
