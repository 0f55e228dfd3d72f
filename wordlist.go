package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// parseList splits a comma-separated flag value into entries
func parseList(value string) []string {
	var entries []string
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// loadWordlistFile reads entries from a text file, one per line
func loadWordlistFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line != "" && !strings.HasPrefix(line, "#") {
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// gatherCredentials merges a comma-separated flag value with an optional
// wordlist file, flag entries first
func gatherCredentials(inline, file string) ([]string, error) {
	var entries []string
	if inline != "" {
		entries = append(entries, parseList(inline)...)
	}
	if file != "" {
		fromFile, err := loadWordlistFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		entries = append(entries, fromFile...)
	}
	return entries, nil
}

// buildJobs enumerates every username/password combination, outer loop
// over usernames, inner loop over passwords. This ordering is observable
// in sequential-mode output and must stay stable.
func buildJobs(usernames, passwords []string) []Job {
	jobs := make([]Job, 0, len(usernames)*len(passwords))
	for _, user := range usernames {
		for _, pass := range passwords {
			jobs = append(jobs, Job{Username: user, Password: pass})
		}
	}
	return jobs
}
