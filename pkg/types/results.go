package types

// CandidateStatus describes one entry of the parameter candidate list.
type CandidateStatus struct {
	Priority int    `json:"priority"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Selected bool   `json:"selected"`
}

// CandidatesResult holds the result of the 'candidates' command.
type CandidatesResult struct {
	WorkDir    string            `json:"workDir"`
	Candidates []CandidateStatus `json:"candidates"`
}

// Selected returns the winning candidate, or nil when none exists.
func (r *CandidatesResult) Selected() *CandidateStatus {
	for i := range r.Candidates {
		if r.Candidates[i].Selected {
			return &r.Candidates[i]
		}
	}
	return nil
}

// TemplateResult holds the result of the 'template' command.
type TemplateResult struct {
	Name         string   `json:"name"`
	Content      string   `json:"content"`
	FilesWritten []string `json:"filesWritten"`
}
