package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCounter is a mock element for classification tests
type MockCounter struct {
	CountFunc func() (int, error)
}

func (m *MockCounter) Count() (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

func TestClassify(t *testing.T) {
	assertionErr := errors.New("expected to have text")

	tests := []struct {
		name     string
		count    int
		countErr error
		err      error
		wantNil  bool
		wantKind Kind
	}{
		{name: "no error", count: 1, err: nil, wantNil: true},
		{name: "element missing", count: 0, err: assertionErr, wantKind: KindTimeout},
		{name: "element present", count: 2, err: assertionErr, wantKind: KindMismatch},
		{name: "count fails", countErr: errors.New("detached"), err: assertionErr, wantKind: KindTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &MockCounter{
				CountFunc: func() (int, error) { return tt.count, tt.countErr },
			}

			err := classify(target, "category button", tt.err)
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}

			var failure *Failure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, tt.wantKind, failure.Kind)
			assert.Equal(t, "category button", failure.Subject)
			assert.ErrorIs(t, err, assertionErr)
		})
	}
}

func TestFailure_Error(t *testing.T) {
	timeout := &Failure{Kind: KindTimeout, Subject: "popup", Err: errors.New("boom")}
	assert.Equal(t, "popup never appeared: boom", timeout.Error())

	mismatch := &Failure{Kind: KindMismatch, Subject: "label", Err: errors.New("boom")}
	assert.Equal(t, "label had wrong value: boom", mismatch.Error())
}

func TestIsTimeoutAndMismatch(t *testing.T) {
	timeout := fmt.Errorf("select category: %w", &Failure{Kind: KindTimeout, Err: errors.New("x")})
	mismatch := fmt.Errorf("select category: %w", &Failure{Kind: KindMismatch, Err: errors.New("x")})

	assert.True(t, IsTimeout(timeout))
	assert.False(t, IsMismatch(timeout))
	assert.True(t, IsMismatch(mismatch))
	assert.False(t, IsTimeout(mismatch))
	assert.False(t, IsTimeout(errors.New("plain")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "never appeared", KindTimeout.String())
	assert.Equal(t, "had wrong value", KindMismatch.String())
	assert.Equal(t, "unknown failure", Kind(0).String())
}
