package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowkit/corekit/pkg/apperror"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultOptions(t *testing.T) {
	opts := NewDefaultOptions()
	assert.Equal(t, DefaultInitialCapacity, opts.InitialCapacity)
	assert.Equal(t, DefaultBlockWidth, opts.BlockWidth)
	assert.Equal(t, DefaultPendingEntries, opts.PendingEntries)
	assert.Equal(t, QueuePolicyReject, opts.QueuePolicy)
	assert.NoError(t, opts.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "initial_capacity: 64\nqueue_policy: drop_oldest\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, opts.InitialCapacity)
	assert.Equal(t, QueuePolicyDropOldest, opts.QueuePolicy)
	// Fields missing from the file keep their defaults.
	assert.Equal(t, DefaultBlockWidth, opts.BlockWidth)
	assert.Equal(t, DefaultPendingEntries, opts.PendingEntries)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "initial_capacity: [not an int\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		errTyp apperror.ErrorType
	}{
		{"negative capacity", func(o *Options) { o.InitialCapacity = -1 }, apperror.ErrorTypeInvalidCapacity},
		{"narrow block", func(o *Options) { o.BlockWidth = 1 }, apperror.ErrorTypeInvalidConfig},
		{"no pending entries", func(o *Options) { o.PendingEntries = 0 }, apperror.ErrorTypeInvalidConfig},
		{"bad policy", func(o *Options) { o.QueuePolicy = "bogus" }, apperror.ErrorTypeInvalidConfig},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := NewDefaultOptions()
			c.mutate(opts)

			err := opts.Validate()
			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, c.errTyp, appErr.GetType())
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "queue_policy: sometimes\n")
	_, err := Load(path)
	assert.Error(t, err)
}
