package main

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// newHTTPClient builds the shared client used by every worker. Keep-alive
// connections are sized to the worker count so parallel runs reuse sockets
// instead of redialing per attempt.
func newHTTPClient(cfg *RunConfig) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxWorkers * 2,
		MaxIdleConnsPerHost: cfg.MaxWorkers,
		IdleConnTimeout:     30 * time.Second,
	}
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}

// tryHTTPLogin performs a single form login attempt and classifies the
// response. Network-level failures become OutcomeError; they never abort
// the run.
func tryHTTPLogin(client *http.Client, cfg *RunConfig, job Job) AttemptResult {
	result := AttemptResult{Job: job, Timestamp: time.Now()}

	form := url.Values{}
	form.Set(cfg.UsernameField, job.Username)
	form.Set(cfg.PasswordField, job.Password)

	req, err := http.NewRequest(http.MethodPost, cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err.Error()
		return result
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for name, value := range cfg.Headers {
		req.Header.Set(name, value)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err.Error()
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err.Error()
		return result
	}

	result.ResponseTime = time.Since(start)
	result.StatusCode = resp.StatusCode
	result.ResponseLength = len(body)
	result.Outcome = classify(cfg, resp.StatusCode, string(body))
	return result
}

// classify decides the outcome of a received response. Indicator rules run
// first, in precedence order; the status code heuristic is the fallback.
func classify(cfg *RunConfig, statusCode int, body string) Outcome {
	if cfg.SuccessIndicator != "" && strings.Contains(body, cfg.SuccessIndicator) {
		return OutcomeSuccess
	}
	if cfg.FailureIndicator != "" && strings.Contains(body, cfg.FailureIndicator) {
		return OutcomeFailure
	}
	if statusCode == http.StatusOK {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
