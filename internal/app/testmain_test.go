package app

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyTestMain runs the suite itself and exits with a failure when any
// test leaves a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
