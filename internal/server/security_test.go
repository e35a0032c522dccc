package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainListener_Listen(t *testing.T) {
	listener, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")

	require.NoError(t, err)
	defer listener.Close()
	assert.NotEmpty(t, listener.Addr().String())
}

func TestTLSListener_Listen_MissingCertificate(t *testing.T) {
	listener := NewTLSListener("missing-cert.pem", "missing-key.pem")

	_, err := listener.Listen("tcp", "127.0.0.1:0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")
}
