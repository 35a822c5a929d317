package models

// RunConfig holds runtime configuration for a processing run.
// All values come from CLI flags; zero values are filled in from document
// detection before extraction starts.
type RunConfig struct {
	CourseName string
	Semester   string
	Year       int
	OutputDir  string
	Format     string // yaml or json
	Store      bool
}
