package log_test

import (
	"bytes"
	"os"
	"testing"

	"camroll/internal/log"
	"camroll/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestVerboseTogglesDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	log.SetVerbose(false)
	log.Debug("hidden message")
	assert.NotContains(t, buf.String(), "hidden message")

	log.SetVerbose(true)
	log.Debug("visible message")
	assert.Contains(t, buf.String(), "visible message")
	log.SetVerbose(false)
}

func TestReporterRoutesSeverities(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	r := log.NewReporter()
	r.Report(types.SeverityWarn, "conflict at %s", "/roll/IMG003.CR2")
	r.Report(types.SeverityError, "mkdir failed")

	out := buf.String()
	assert.Contains(t, out, "conflict at /roll/IMG003.CR2")
	assert.Contains(t, out, "mkdir failed")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "level=error")
}
