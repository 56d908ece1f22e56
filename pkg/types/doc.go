// Package types defines the core types and interfaces shared by the
// generation pipeline: the FS and Reporter collaborators, the parameter
// and context mappings, and the result records returned by commands.
package types
