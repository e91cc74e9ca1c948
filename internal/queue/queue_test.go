package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnqueueWithRetrySucceedsFirstTry(t *testing.T) {
	q := &MockQueue{}
	task := Task{Type: TaskTypeReview, Payload: []byte(`{}`)}
	q.On("Enqueue", mock.Anything, task).Return(nil).Once()

	err := EnqueueWithRetry(context.Background(), q, task, 3, time.Millisecond)
	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestEnqueueWithRetryRecoversAfterFailure(t *testing.T) {
	q := &MockQueue{}
	task := Task{Type: TaskTypeReview}
	q.On("Enqueue", mock.Anything, task).Return(errors.New("nats down")).Once()
	q.On("Enqueue", mock.Anything, task).Return(nil).Once()

	err := EnqueueWithRetry(context.Background(), q, task, 3, time.Millisecond)
	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestEnqueueWithRetryExhaustsAttempts(t *testing.T) {
	q := &MockQueue{}
	task := Task{Type: TaskTypeReview}
	q.On("Enqueue", mock.Anything, task).Return(errors.New("nats down")).Times(3)

	err := EnqueueWithRetry(context.Background(), q, task, 3, time.Millisecond)
	assert.Error(t, err)
	q.AssertExpectations(t)
}

func TestEnqueueWithRetryZeroAttemptsMeansOne(t *testing.T) {
	q := &MockQueue{}
	task := Task{Type: TaskTypeReview}
	q.On("Enqueue", mock.Anything, task).Return(errors.New("nats down")).Once()

	err := EnqueueWithRetry(context.Background(), q, task, 0, time.Millisecond)
	assert.Error(t, err)
	q.AssertExpectations(t)
}
