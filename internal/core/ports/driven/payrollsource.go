package driven

// PayrollSource enumerates candidate payslip files in the input folder.
type PayrollSource interface {
	// List returns the candidate file names in dir sorted ascending,
	// skipping the sentinel ".gitkeep" file and hidden entries.
	List(dir string) ([]string, error)
}
