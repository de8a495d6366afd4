package drive

// ViewURL builds the user-facing Drive link for an uploaded file id.
func (s *Store) ViewURL(fileID string) string {
	return "https://drive.google.com/file/d/" + fileID + "/view"
}
