// Command analyzer compares a resume against the job market. It
// extracts skills from the resume, fetches postings for a domain,
// measures the gap, and produces a learning path plus charts. The
// serve subcommand exposes the same pipeline over HTTP.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
