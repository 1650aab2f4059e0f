package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Configure("info", "text")
		SetOutput(os.Stdout)
	})

	require.NoError(t, Configure("warn", "json"))

	Info.Printf("hidden id=%d", 1)
	assert.Empty(t, buf.String())

	Error.Printf("shown id=%d", 2)
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown id=2", line["msg"])
	assert.Equal(t, "error", line["level"])
}

func TestConfigure_Invalid(t *testing.T) {
	assert.Error(t, Configure("loud", "text"))
	assert.Error(t, Configure("info", "xml"))
}
