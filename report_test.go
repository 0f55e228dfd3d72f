package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []AttemptResult {
	now := time.Now()
	return []AttemptResult{
		{
			Job:            Job{Username: "admin", Password: "hunter2"},
			StatusCode:     200,
			Outcome:        OutcomeSuccess,
			ResponseTime:   120 * time.Millisecond,
			ResponseLength: 42,
			Timestamp:      now,
		},
		{
			Job:        Job{Username: "admin", Password: "wrong"},
			StatusCode: 401,
			Outcome:    OutcomeFailure,
			Timestamp:  now,
		},
		{
			Job:       Job{Username: "root", Password: "wrong"},
			Outcome:   OutcomeError,
			Err:       "connection refused",
			Timestamp: now,
		},
	}
}

func TestBuildSummary(t *testing.T) {
	s := buildSummary("run-1", "https://example.com/login", sampleResults())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Successful)
	assert.Equal(t, 2, s.Failed, "ERROR outcomes fold into the failed count")
	assert.InDelta(t, 33.3, s.SuccessRate, 0.001)
	assert.Equal(t, []Credential{{Username: "admin", Password: "hunter2"}}, s.Credentials)
}

func TestSuccessRateRounding(t *testing.T) {
	results := make([]AttemptResult, 12)
	for i := range results {
		results[i] = AttemptResult{Outcome: OutcomeFailure, StatusCode: 401}
	}
	results[0].Outcome = OutcomeSuccess
	results[0].StatusCode = 200

	s := buildSummary("run-1", "https://example.com/login", results)
	assert.InDelta(t, 8.3, s.SuccessRate, 0.001)
}

func TestSaveResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := buildSummary("run-json", "https://example.com/login", sampleResults())

	require.NoError(t, saveResults(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "run-json", decoded.RunID)
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 1, decoded.Successful)
	assert.Equal(t, 2, decoded.Failed)
	assert.Equal(t, []Credential{{Username: "admin", Password: "hunter2"}}, decoded.Credentials)

	require.Len(t, decoded.Results, 3)
	require.NotNil(t, decoded.Results[0].StatusCode)
	assert.Equal(t, 200, *decoded.Results[0].StatusCode)
	assert.Nil(t, decoded.Results[2].StatusCode, "ERROR rows serialize a null status code")
	assert.Equal(t, "connection refused", decoded.Results[2].Error)
}

func TestSaveResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := buildSummary("run-csv", "https://example.com/login", sampleResults())

	require.NoError(t, saveResults(s, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"username", "password", "status_code", "outcome"}, rows[0])
	assert.Equal(t, []string{"admin", "hunter2", "200", "SUCCESS"}, rows[1])
	assert.Equal(t, []string{"admin", "wrong", "401", "FAILED"}, rows[2])
	assert.Equal(t, []string{"root", "wrong", "", "ERROR"}, rows[3], "ERROR rows have an empty status code")
}

func TestOutputFormat(t *testing.T) {
	format, err := outputFormat("results.json")
	require.NoError(t, err)
	assert.Equal(t, "json", format)

	format, err = outputFormat("results.CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", format)

	_, err = outputFormat("results.txt")
	assert.Error(t, err)

	_, err = outputFormat("results")
	assert.Error(t, err)
}
