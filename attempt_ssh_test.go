package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSSHTarget(t *testing.T) {
	assert.True(t, isSSHTarget("ssh://10.0.0.5"))
	assert.False(t, isSSHTarget("https://example.com/login"))
	assert.False(t, isSSHTarget("http://example.com"))
}

func TestSSHAddr(t *testing.T) {
	addr, err := sshAddr("ssh://10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:22", addr)

	addr, err = sshAddr("ssh://bastion.example.com:2222")
	require.NoError(t, err)
	assert.Equal(t, "bastion.example.com:2222", addr)
}

func TestTrySSHLoginConnectionError(t *testing.T) {
	cfg := &RunConfig{
		URL:     "ssh://127.0.0.1:1", // nothing listens here
		Timeout: 500 * time.Millisecond,
	}

	result := trySSHLogin(cfg, Job{Username: "root", Password: "toor"})

	assert.Equal(t, OutcomeError, result.Outcome)
	assert.Equal(t, 0, result.StatusCode)
	assert.NotEmpty(t, result.Err)
}
