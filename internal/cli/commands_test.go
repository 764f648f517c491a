package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/fixtures"
)

// MockBackcallFinder is a mock implementation of apiclient.BackcallFinder
type MockBackcallFinder struct {
	FindBackcallFunc func(ctx context.Context, name, phone string) (bool, error)
}

func (m *MockBackcallFinder) FindBackcall(ctx context.Context, name, phone string) (bool, error) {
	if m.FindBackcallFunc != nil {
		return m.FindBackcallFunc(ctx, name, phone)
	}
	return false, nil
}

func finderReturning(found bool, err error) *MockBackcallFinder {
	return &MockBackcallFinder{
		FindBackcallFunc: func(context.Context, string, string) (bool, error) {
			return found, err
		},
	}
}

func TestRunBackcall(t *testing.T) {
	tests := []struct {
		name    string
		finder  *MockBackcallFinder
		wantOut string
		wantErr error
	}{
		{
			name:    "found",
			finder:  finderReturning(true, nil),
			wantOut: "found\n",
		},
		{
			name:    "not found",
			finder:  &MockBackcallFinder{},
			wantOut: "not found\n",
			wantErr: ErrBackcallNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunBackcall(context.Background(), tt.finder, "Test Olena", "+380506743060", &out)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRunBackcall_LookupError(t *testing.T) {
	var out bytes.Buffer
	lookupErr := errors.New("connection refused")

	err := RunBackcall(context.Background(), finderReturning(false, lookupErr), "Test Olena", "+380506743060", &out)

	assert.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, ErrBackcallNotFound)
	assert.Empty(t, out.String())
}

func TestRunBackcall_MissingArguments(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, RunBackcall(context.Background(), finderReturning(true, nil), "", "+380506743060", &out))
	assert.Error(t, RunBackcall(context.Background(), finderReturning(true, nil), "Test Olena", "", &out))
}

func TestRunFixturePhotos(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, RunFixturePhotos(dir, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, dir, filepath.Dir(line))
		_, err := os.Stat(line)
		assert.NoError(t, err)
	}
	assert.Equal(t, fixtures.InvalidPhotoName, filepath.Base(lines[len(lines)-1]))
}

func TestRunFixtureCategories(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, RunFixtureCategories(&out))

	text := out.String()
	first := fixtures.Categories.Categories[0]
	assert.True(t, strings.HasPrefix(text, first.Name+"\n"))
	assert.Contains(t, text, "\n  "+first.Subcategories[0].Name+"\n")
	for _, leaf := range fixtures.Categories.Leaves() {
		assert.Contains(t, text, "    "+leaf+"\n")
	}
}
