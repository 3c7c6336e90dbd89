package encryption

// Result is the outcome of sealing or opening one file.
type Result struct {
	// Input and Output are the source and destination paths.
	Input, Output string

	// OutputSize is the size of the committed output in bytes.
	OutputSize int64

	// Executable records the envelope's executable flag.
	Executable bool

	// Error is set when the file could not be processed; no output exists then.
	Error error
}
