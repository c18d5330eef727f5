package ports

// FilePicker is an optional interactive file-selection capability. The
// unavailable variant reports Available() == false and never raises; a
// cancelled pick yields an empty path with a nil error.
type FilePicker interface {
	Available() bool
	Pick() (string, error)
}
