package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Credential is a username/password pair in the serialized report
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResultRecord is one attempt in the serialized report
type ResultRecord struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	StatusCode     *int    `json:"status_code"` // null when no response was received
	Outcome        string  `json:"outcome"`
	Error          string  `json:"error,omitempty"`
	ResponseTime   float64 `json:"response_time,omitempty"` // seconds
	ResponseLength int     `json:"response_length,omitempty"`
	Timestamp      string  `json:"timestamp"`
}

// Summary aggregates a finished run for reporting
type Summary struct {
	RunID       string         `json:"run_id"`
	URL         string         `json:"url"`
	Total       int            `json:"total"`
	Successful  int            `json:"successful"`
	Failed      int            `json:"failed"`
	SuccessRate float64        `json:"success_rate"`
	Credentials []Credential   `json:"credentials"`
	Results     []ResultRecord `json:"results"`
}

// buildSummary rolls the attempt results up into a Summary. ERROR outcomes
// count as failures for the success rate.
func buildSummary(runID, targetURL string, results []AttemptResult) Summary {
	s := Summary{
		RunID:       runID,
		URL:         targetURL,
		Total:       len(results),
		Credentials: []Credential{},
		Results:     make([]ResultRecord, 0, len(results)),
	}

	for _, result := range results {
		if result.Outcome == OutcomeSuccess {
			s.Successful++
			s.Credentials = append(s.Credentials, Credential{
				Username: result.Job.Username,
				Password: result.Job.Password,
			})
		}
		s.Results = append(s.Results, toRecord(result))
	}

	s.Failed = s.Total - s.Successful
	if s.Total > 0 {
		rate := float64(s.Successful) / float64(s.Total) * 100
		s.SuccessRate = math.Round(rate*10) / 10
	}

	return s
}

func toRecord(result AttemptResult) ResultRecord {
	record := ResultRecord{
		Username:       result.Job.Username,
		Password:       result.Job.Password,
		Outcome:        string(result.Outcome),
		Error:          result.Err,
		ResponseLength: result.ResponseLength,
		Timestamp:      result.Timestamp.Format(time.RFC3339),
	}
	if result.StatusCode != 0 {
		code := result.StatusCode
		record.StatusCode = &code
	}
	if result.ResponseTime > 0 {
		record.ResponseTime = math.Round(result.ResponseTime.Seconds()*1000) / 1000
	}
	return record
}

// printReport writes the plain-text summary block to stdout
func printReport(s Summary, elapsed time.Duration) {
	fmt.Printf("\n===== LOGIN TEST REPORT =====\n")
	fmt.Printf("Total tests: %d\n", s.Total)
	fmt.Printf("Successful logins: %d\n", s.Successful)
	fmt.Printf("Failed logins: %d\n", s.Failed)
	fmt.Printf("Success rate: %.1f%%\n", s.SuccessRate)
	fmt.Printf("Time elapsed: %v\n", elapsed.Round(time.Second))
	if elapsed > 0 {
		fmt.Printf("Average rate: %.1f attempts/second\n", float64(s.Total)/elapsed.Seconds())
	}

	if len(s.Credentials) > 0 {
		fmt.Printf("\nSuccessful login credentials:\n")
		for _, cred := range s.Credentials {
			fmt.Printf("  %s:%s\n", cred.Username, cred.Password)
		}
	}

	fmt.Printf("============================\n")
}

// outputFormat maps an output path to its serialization format
func outputFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return "json", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use .json or .csv)", ext)
	}
}

// saveResults serializes the summary to the configured output file
func saveResults(s Summary, path string) error {
	format, err := outputFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	switch format {
	case "json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	case "csv":
		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"username", "password", "status_code", "outcome"}); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		for _, record := range s.Results {
			statusCode := ""
			if record.StatusCode != nil {
				statusCode = strconv.Itoa(*record.StatusCode)
			}
			row := []string{record.Username, record.Password, statusCode, record.Outcome}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	fmt.Printf("Results saved to %s\n", path)
	return nil
}
