// Package fetch retrieves job postings for a target domain. Sources
// are tried in order of fidelity: the Adzuna API when credentials are
// present, a scrapeable job board, and finally a built-in sample set
// so an analysis never runs against zero jobs.
package fetch

import (
	"context"
	"errors"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
)

// ErrNoJobs reports that a source answered but had no postings for the
// requested domain.
var ErrNoJobs = errors.New("no jobs found")

type Source interface {
	Name() string
	Fetch(ctx context.Context, domain string, count int) ([]job.Job, error)
}
