package bootstrap

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAudit struct {
	entries []AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestStartHTTPServer_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	audit := &recordingAudit{}
	err = StartHTTPServer(http.NotFoundHandler(), ServerConfig{Port: port}, audit, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on :"+port)
	require.Len(t, audit.entries, 2)
	assert.Equal(t, "SERVER_START", audit.entries[0].Action)
	assert.Equal(t, "SERVER_FAILED", audit.entries[1].Action)
}
