package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/akamensky/argparse"
	"github.com/google/uuid"
)

func main() {
	parser := argparse.NewParser("logintester", "Automated login testing tool")

	// Target
	urlArg := parser.String("", "url", &argparse.Options{
		Required: true,
		Help:     "Login endpoint URL. Examples: 'https://example.com/login' or 'ssh://10.0.0.5:2222'",
	})

	// Credential sources (direct or from files)
	usersArg := parser.String("", "usernames", &argparse.Options{
		Help: "Usernames to test (comma-separated). Example: 'admin,root,user'",
	})
	passArg := parser.String("", "passwords", &argparse.Options{
		Help: "Passwords to test (comma-separated). Example: 'password,123456,admin'",
	})
	userFileArg := parser.String("", "username-file", &argparse.Options{
		Help: "File containing usernames (one per line)",
	})
	passFileArg := parser.String("", "password-file", &argparse.Options{
		Help: "File containing passwords (one per line)",
	})

	// Login form configuration
	userFieldArg := parser.String("", "username-field", &argparse.Options{
		Default: defaultUsernameField,
		Help:    "Username form field name",
	})
	passFieldArg := parser.String("", "password-field", &argparse.Options{
		Default: defaultPasswordField,
		Help:    "Password form field name",
	})
	successArg := parser.String("", "success-indicator", &argparse.Options{
		Help: "Text indicating successful login",
	})
	failureArg := parser.String("", "failure-indicator", &argparse.Options{
		Help: "Text indicating failed login",
	})
	headerArgs := parser.StringList("", "header", &argparse.Options{
		Help: "Extra request header as 'Name: Value' (repeatable)",
	})

	// Testing options
	parallelArg := parser.Flag("", "parallel", &argparse.Options{
		Help: "Run tests in parallel",
	})
	workersArg := parser.Int("", "max-workers", &argparse.Options{
		Default: defaultMaxWorkers,
		Help:    "Max parallel workers",
	})
	delayArg := parser.Float("", "delay", &argparse.Options{
		Default: defaultDelaySeconds,
		Help:    "Delay between requests in seconds",
	})
	jitterArg := parser.Flag("", "jitter", &argparse.Options{
		Help: "Randomize the inter-request delay",
	})
	rateArg := parser.Int("", "rate", &argparse.Options{
		Default: 0,
		Help:    "Global request rate cap per second across all workers (0 = unlimited)",
	})
	timeoutArg := parser.Int("", "timeout", &argparse.Options{
		Default: defaultTimeoutSec,
		Help:    "Request timeout in seconds",
	})
	insecureArg := parser.Flag("", "insecure", &argparse.Options{
		Help: "Skip TLS certificate verification",
	})

	// Output options
	outputArg := parser.String("", "output", &argparse.Options{
		Help: "Output file for results (json or csv)",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	usernames, err := gatherCredentials(*usersArg, *userFileArg)
	if err != nil {
		fatal(err)
	}
	passwords, err := gatherCredentials(*passArg, *passFileArg)
	if err != nil {
		fatal(err)
	}

	headers, err := parseHeaders(*headerArgs)
	if err != nil {
		fatal(err)
	}
	if _, ok := headers["User-Agent"]; !ok {
		headers["User-Agent"] = defaultUserAgent
	}

	cfg := &RunConfig{
		URL:              *urlArg,
		UsernameField:    *userFieldArg,
		PasswordField:    *passFieldArg,
		SuccessIndicator: *successArg,
		FailureIndicator: *failureArg,
		Headers:          headers,
		Timeout:          time.Duration(*timeoutArg) * time.Second,
		Delay:            time.Duration(*delayArg * float64(time.Second)),
		Jitter:           *jitterArg,
		Parallel:         *parallelArg,
		MaxWorkers:       *workersArg,
		Rate:             *rateArg,
		Insecure:         *insecureArg,
		OutputPath:       *outputArg,
	}

	if err := validateConfig(cfg, usernames, passwords); err != nil {
		fatal(err)
	}

	runID := uuid.New().String()
	jobs := buildJobs(usernames, passwords)
	printBanner(cfg, runID, len(usernames), len(passwords))

	runner := NewRunner(cfg)
	start := time.Now()
	results := runner.Run(jobs)
	elapsed := time.Since(start)

	summary := buildSummary(runID, cfg.URL, results)
	printReport(summary, elapsed)

	if cfg.OutputPath != "" {
		if err := saveResults(summary, cfg.OutputPath); err != nil {
			fatal(err)
		}
	}
}

// fatal reports a configuration error and exits before any attempt is made
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// parseHeaders turns repeated 'Name: Value' flags into a header map
func parseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, value := range values {
		name, val, found := strings.Cut(value, ":")
		name = strings.TrimSpace(name)
		val = strings.TrimSpace(val)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: Value'", value)
		}
		headers[http.CanonicalHeaderKey(name)] = val
	}
	return headers, nil
}

// validateConfig checks everything that must fail before any network
// activity happens
func validateConfig(cfg *RunConfig, usernames, passwords []string) error {
	target, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", cfg.URL, err)
	}
	switch target.Scheme {
	case "http", "https", "ssh":
	default:
		return fmt.Errorf("unsupported URL scheme %q", target.Scheme)
	}
	if target.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", cfg.URL)
	}

	if len(usernames) == 0 {
		return errors.New("no usernames provided, use --usernames or --username-file")
	}
	if len(passwords) == 0 {
		return errors.New("no passwords provided, use --passwords or --password-file")
	}

	if cfg.MaxWorkers <= 0 {
		return errors.New("worker count must be greater than 0")
	}
	if cfg.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if cfg.Timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	if cfg.Rate < 0 {
		return errors.New("rate must not be negative")
	}

	if cfg.OutputPath != "" {
		if _, err := outputFormat(cfg.OutputPath); err != nil {
			return err
		}
	}

	return nil
}

// printBanner shows the run configuration before any attempt starts
func printBanner(cfg *RunConfig, runID string, userCount, passCount int) {
	mode := "sequential"
	if cfg.Parallel {
		mode = fmt.Sprintf("parallel (%d workers)", cfg.MaxWorkers)
	}

	fmt.Printf("🚀 Login Testing Tool\n")
	fmt.Printf("📊 Configuration:\n")
	fmt.Printf("   Run ID: %s\n", runID)
	fmt.Printf("   Target: %s\n", cfg.URL)
	fmt.Printf("   Usernames: %d\n", userCount)
	fmt.Printf("   Passwords: %d\n", passCount)
	fmt.Printf("   Total combinations: %d\n", userCount*passCount)
	fmt.Printf("   Mode: %s\n\n", mode)
}
