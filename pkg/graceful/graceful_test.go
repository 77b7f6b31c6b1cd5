package graceful

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStopOnDone(t *testing.T) {
	done := make(chan struct{})
	close(done)

	called := false
	StopOn(done, func() { called = true })
	require.True(t, called)
}
