package fetch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"

	"github.com/rs/zerolog"
)

type fakeSource struct {
	name  string
	jobs  []job.Job
	err   error
	calls int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func TestFetch_FirstSourceWins(t *testing.T) {
	first := &fakeSource{name: "first", jobs: []job.Job{{ID: "a"}}}
	second := &fakeSource{name: "second", jobs: []job.Job{{ID: "b"}}}
	f := New([]Source{first, second}, nil, zerolog.Nop())

	jobs, err := f.Fetch(context.Background(), "Software Developer", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "a" {
		t.Fatalf("jobs = %v, want the first source's job", jobs)
	}
	if second.calls != 0 {
		t.Errorf("second source called %d times, want 0", second.calls)
	}
}

func TestFetch_FallsBackOnError(t *testing.T) {
	first := &fakeSource{name: "first", err: errors.New("boom")}
	second := &fakeSource{name: "second", jobs: []job.Job{{ID: "b"}}}
	f := New([]Source{first, second}, nil, zerolog.Nop())

	jobs, err := f.Fetch(context.Background(), "Software Developer", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "b" {
		t.Fatalf("jobs = %v, want the fallback source's job", jobs)
	}
	if first.calls != 1 {
		t.Errorf("first source called %d times, want 1", first.calls)
	}
}

func TestFetch_AllSourcesFail(t *testing.T) {
	f := New([]Source{
		&fakeSource{name: "first", err: errors.New("down")},
		&fakeSource{name: "second", err: errors.New("also down")},
	}, nil, zerolog.Nop())

	_, err := f.Fetch(context.Background(), "Software Developer", 10)
	if err == nil {
		t.Fatal("Fetch() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "all job sources failed") {
		t.Errorf("error = %v, want it to name the total failure", err)
	}
	if !strings.Contains(err.Error(), "also down") {
		t.Errorf("error = %v, want it to carry the last source error", err)
	}
}

func TestFetch_NoSourcesConfigured(t *testing.T) {
	f := New(nil, nil, zerolog.Nop())

	if _, err := f.Fetch(context.Background(), "Software Developer", 10); err == nil {
		t.Fatal("Fetch() error = nil, want failure")
	}
}

func TestFetchFrom_PinsSource(t *testing.T) {
	first := &fakeSource{name: "adzuna", err: errors.New("down")}
	second := &fakeSource{name: "samples", jobs: []job.Job{{ID: "s"}}}
	f := New([]Source{first, second}, nil, zerolog.Nop())

	jobs, err := f.FetchFrom(context.Background(), "samples", "Software Developer", 10)
	if err != nil {
		t.Fatalf("FetchFrom() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "s" {
		t.Fatalf("jobs = %v, want the pinned source's job", jobs)
	}
	if first.calls != 0 {
		t.Errorf("unpinned source called %d times, want 0", first.calls)
	}
}

func TestFetchFrom_NoFallback(t *testing.T) {
	first := &fakeSource{name: "adzuna", err: errors.New("down")}
	second := &fakeSource{name: "samples", jobs: []job.Job{{ID: "s"}}}
	f := New([]Source{first, second}, nil, zerolog.Nop())

	if _, err := f.FetchFrom(context.Background(), "adzuna", "Software Developer", 10); err == nil {
		t.Fatal("FetchFrom() error = nil, want the pinned source's failure")
	}
	if second.calls != 0 {
		t.Errorf("fallback source called %d times, want 0", second.calls)
	}
}

func TestFetchFrom_UnknownSource(t *testing.T) {
	f := New([]Source{&fakeSource{name: "samples"}}, nil, zerolog.Nop())

	_, err := f.FetchFrom(context.Background(), "nope", "Software Developer", 10)
	if err == nil || !strings.Contains(err.Error(), `unknown job source "nope"`) {
		t.Fatalf("error = %v, want unknown source", err)
	}
}

func TestCacheKey(t *testing.T) {
	got := cacheKey("adzuna", "  Software Developer ", 50)
	want := "jobs:adzuna:software-developer:50"
	if got != want {
		t.Fatalf("cacheKey = %q, want %q", got, want)
	}
}
