package driven

import "context"

// FileStore is the cloud storage collaborator: one folder per year under
// a configured parent, one uploaded file per payslip.
type FileStore interface {
	// EnsureFolder returns the id of the folder named name under the
	// configured parent, creating it when absent. More than one existing
	// match is domain.ErrFolderAmbiguous and must abort the run.
	EnsureFolder(ctx context.Context, name string) (string, error)

	// Upload stores the file at path under folderID using the given
	// display name and returns the stable file id.
	Upload(ctx context.Context, folderID, path, name string) (string, error)

	// ViewURL builds the user-facing link for an uploaded file id.
	ViewURL(fileID string) string
}
