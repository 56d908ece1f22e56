package generator

// State is a step of the generation pipeline
type State string

const (
	StateStart            State = "start"
	StateSourceResolved   State = "source-resolved"
	StateParametersParsed State = "parameters-parsed"
	StateContextBuilt     State = "context-built"
	StateRendered         State = "rendered"
	StateWritten          State = "written"
	StateDone             State = "done"
	StateAborted          State = "aborted"
	StateFailed           State = "failed"
)

// Terminal reports whether no transition leaves s
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted || s == StateFailed
}

// Result describes a finished run
type Result struct {
	State State   `json:"state"`
	Trail []State `json:"trail"`

	SourcePath        string `json:"sourcePath,omitempty"`
	DestinationPath   string `json:"destinationPath,omitempty"`
	HashSaltGenerated bool   `json:"hashSaltGenerated"`

	Err error `json:"-"`
}

// Succeeded reports whether the run reached Done
func (r *Result) Succeeded() bool {
	return r.State == StateDone
}
