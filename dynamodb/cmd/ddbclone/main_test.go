package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:     "clone succeeds",
			args:     []string{"clone", "Orders", "OrdersClone", "--memory"},
			wantCode: 0,
		},
		{
			name:       "source missing",
			args:       []string{"clone", "Missing", "OrdersClone", "--memory"},
			wantCode:   1,
			wantStderr: "ddbclone: source table does not exist: \"Missing\"\n",
		},
		{
			name:       "destination exists",
			args:       []string{"clone", "Orders", "OrdersCopy", "--memory"},
			wantCode:   1,
			wantStderr: "ddbclone: destination table already exists: \"OrdersCopy\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append(tt.args, "--seed", seedFile(t))
			code := run(&app{configDir: t.TempDir()}, args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == 0 {
				assert.Empty(t, stderr.String())
				return
			}
			assert.Contains(t, stderr.String(), tt.wantStderr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_LogFileWrittenOnFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ddbclone.log")
	var stdout, stderr bytes.Buffer

	code := run(&app{configDir: t.TempDir()},
		[]string{"clone", "Missing", "Dest", "--memory", "--log-level", "debug", "--log-file", logPath},
		&stdout, &stderr)
	require.Equal(t, 1, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "describe source failed")
}
