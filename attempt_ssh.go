package main

import (
	"net"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// isSSHTarget reports whether the target URL selects the SSH attempter
func isSSHTarget(target string) bool {
	return strings.HasPrefix(target, "ssh://")
}

// sshAddr extracts host:port from an ssh:// URL, defaulting to port 22
func sshAddr(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "22"
	}
	return net.JoinHostPort(host, port), nil
}

// trySSHLogin performs a single SSH password authentication attempt.
// A rejected password is a FAILED outcome; connection-level errors are
// ERROR, same as the HTTP path.
func trySSHLogin(cfg *RunConfig, job Job) AttemptResult {
	result := AttemptResult{Job: job, Timestamp: time.Now()}

	addr, err := sshAddr(cfg.URL)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err.Error()
		return result
	}

	clientConfig := &ssh.ClientConfig{
		User: job.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(job.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.Timeout,
	}

	start := time.Now()
	conn, err := net.DialTimeout("tcp", addr, cfg.Timeout)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err.Error()
		return result
	}
	defer conn.Close()

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		result.ResponseTime = time.Since(start)
		if strings.Contains(err.Error(), "unable to authenticate") {
			result.Outcome = OutcomeFailure
		} else {
			result.Outcome = OutcomeError
			result.Err = err.Error()
		}
		return result
	}

	client := ssh.NewClient(clientConn, chans, reqs)
	defer client.Close()

	// Open a session to verify the login actually works
	session, err := client.NewSession()
	if err != nil {
		result.ResponseTime = time.Since(start)
		result.Outcome = OutcomeFailure
		return result
	}
	session.Close()

	result.ResponseTime = time.Since(start)
	result.Outcome = OutcomeSuccess
	return result
}
