package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("SubmitPlanSegment", "worker-1:9100", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "SubmitPlanSegment")
	assert.Contains(t, err.Error(), "worker-1:9100")
}

func TestApplicationError(t *testing.T) {
	err := NewApplicationError("SendResources", 241, "memory limit exceeded")
	assert.Contains(t, err.Error(), "code 241")

	var appErr *ApplicationError
	assert.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, int32(241), appErr.Code)
}

func TestPlacementError(t *testing.T) {
	err := NewPlacementError(5, "no eligible worker")
	assert.Contains(t, err.Error(), "segment 5")
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("callback_port", "must be set before dispatch")
	assert.Contains(t, err.Error(), "callback_port")
}

func TestIsDeadlineExceeded(t *testing.T) {
	err := NewDeadlineExceededError(time.Now(), 3)
	assert.True(t, IsDeadlineExceeded(err))
	assert.False(t, IsDeadlineExceeded(errors.New("other")))

	// Wrapped deadline errors are still recognized.
	wrapped := NewTransportError("SubmitPlanSegment", "w1", err)
	assert.True(t, IsDeadlineExceeded(wrapped))
}

func TestAttemptStateTerminal(t *testing.T) {
	assert.False(t, AttemptStateIdle.Terminal())
	assert.False(t, AttemptStateRunning.Terminal())
	assert.True(t, AttemptStateSucceeded.Terminal())
	assert.True(t, AttemptStateFailed.Terminal())
	assert.True(t, AttemptStateExpired.Terminal())
}

func TestTaskStatusString(t *testing.T) {
	assert.Equal(t, "unknown", TaskStatusUnknown.String())
	assert.Equal(t, "success", TaskStatusSuccess.String())
	assert.Equal(t, "fail", TaskStatusFail.String())
	assert.Equal(t, "wait", TaskStatusWait.String())
	assert.Equal(t, "invalid", TaskStatus(0).String())
}
