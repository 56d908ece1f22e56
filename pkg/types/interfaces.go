package types

import "io/fs"

// FS is the filesystem collaborator used by every pipeline stage
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Permissions
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// Reporter receives user-visible messages. It is separate from the
// diagnostic logger: operators read these lines on every run.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// NopReporter discards every message
type NopReporter struct{}

func (NopReporter) Info(string)    {}
func (NopReporter) Success(string) {}
func (NopReporter) Error(string)   {}
