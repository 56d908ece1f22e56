package testutil

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
)

// AssertContains checks if a string contains a substring
func AssertContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(str, substr) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sString %q does not contain %q", msg, str, substr)
	}
}

// AssertNotContains checks if a string does not contain a substring
func AssertNotContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()

	if strings.Contains(str, substr) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sString %q should not contain %q", msg, str, substr)
	}
}

// AssertErrorCode checks that err carries the given pipeline error code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()

	if err == nil {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected error with code %s but got nil", msg, code)
		return
	}
	if got := errors.GetErrorCode(err); got != code {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sError code mismatch. Expected: %s, Actual: %s (%v)", msg, code, got, err)
	}
}

// AssertMode checks the permission bits of a file in the environment
func AssertMode(t *testing.T, env *TestEnvironment, rel string, want fs.FileMode, msgAndArgs ...interface{}) {
	t.Helper()

	if got := env.Mode(rel); got != want {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sMode mismatch for %s. Expected: %o, Actual: %o", msg, rel, want, got)
	}
}

// AssertNotExists checks that a path is absent from the environment
func AssertNotExists(t *testing.T, env *TestEnvironment, rel string, msgAndArgs ...interface{}) {
	t.Helper()

	if env.Exists(rel) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sPath should not exist: %s", msg, rel)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg + "\n"
		}
		return fmt.Sprint(msgAndArgs[0]) + "\n"
	}

	// Check if first arg is a format string with format verbs
	if format, ok := msgAndArgs[0].(string); ok && strings.Contains(format, "%") {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}

	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ") + "\n"
}
