package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setWarnFn swaps the process-global warning hook for the test's duration.
func setWarnFn(t *testing.T, fn func(severity int32, msg string)) {
	t.Helper()
	warnMu.Lock()
	prev := warnFn
	warnFn = fn
	warnMu.Unlock()
	t.Cleanup(func() {
		warnMu.Lock()
		warnFn = prev
		warnMu.Unlock()
	})
}

func TestForwardWarningDeliversMessage(t *testing.T) {
	var gotSeverity int32
	var gotMsg string
	setWarnFn(t, func(severity int32, msg string) {
		gotSeverity = severity
		gotMsg = msg
	})

	payload := []byte("surface lost\x00")
	forwardWarning(1, &payload[0])

	assert.Equal(t, int32(1), gotSeverity)
	assert.Equal(t, "surface lost", gotMsg)
}

func TestForwardWarningContainsHookPanic(t *testing.T) {
	setWarnFn(t, func(int32, string) { panic("hook exploded") })

	payload := []byte("boom\x00")
	require.NotPanics(t, func() { forwardWarning(0, &payload[0]) })
}

func TestForwardWarningWithoutHook(t *testing.T) {
	setWarnFn(t, nil)

	payload := []byte("dropped\x00")
	require.NotPanics(t, func() { forwardWarning(0, &payload[0]) })
}
