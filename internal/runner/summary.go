package runner

import "photoflow/internal/services/photoshop"

// Summary is the terminal artifact of a run: the ordered per-job results plus
// derived counts and the warnings collected while the run was assembled.
type Summary struct {
	RunID     string
	Results   []photoshop.Result
	Succeeded int
	Failed    int
	Warnings  []string
	Canceled  bool
}

// Total returns the number of jobs that produced a result.
func (s *Summary) Total() int {
	return len(s.Results)
}

func (s *Summary) append(result photoshop.Result) {
	s.Results = append(s.Results, result)
	if result.Succeeded() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
