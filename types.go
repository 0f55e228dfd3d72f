package main

import "time"

// Default configuration values, made explicit so they show up in --help
const (
	defaultUsernameField = "username"
	defaultPasswordField = "password"
	defaultDelaySeconds  = 0.5
	defaultTimeoutSec    = 10
	defaultMaxWorkers    = 5

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Job represents a single login attempt to make
type Job struct {
	Username string
	Password string
}

// Outcome classifies a finished attempt
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILED"
	OutcomeError   Outcome = "ERROR"
)

// AttemptResult is the record of one finished login attempt
type AttemptResult struct {
	Job            Job
	StatusCode     int // 0 when no response was received
	Outcome        Outcome
	Err            string
	ResponseTime   time.Duration
	ResponseLength int
	Timestamp      time.Time
}

// RunConfig contains the full run configuration. It is built once at
// startup and read-only afterwards, shared by all workers.
type RunConfig struct {
	URL              string
	UsernameField    string
	PasswordField    string
	SuccessIndicator string
	FailureIndicator string
	Headers          map[string]string

	Timeout    time.Duration
	Delay      time.Duration
	Jitter     bool
	Parallel   bool
	MaxWorkers int
	Rate       int // global requests/second cap, 0 = unlimited
	Insecure   bool

	OutputPath string
}
