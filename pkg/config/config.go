package config

import (
	"os"

	"github.com/pingcap/errors"
	"gopkg.in/yaml.v3"

	"github.com/flowkit/corekit/pkg/apperror"
)

const (
	// DefaultInitialCapacity is the ring buffer capacity used when the
	// caller does not ask for one.
	DefaultInitialCapacity = 16
	// DefaultBlockWidth is the block size of the deque.
	DefaultBlockWidth = 32
	// DefaultPendingEntries is the size of the buffered logger's
	// pending-entry buffer.
	DefaultPendingEntries = 1024
)

const (
	QueuePolicyReject     = "reject"
	QueuePolicyDropOldest = "drop_oldest"
)

// Options carries the tunables of the library. Zero fields fall back to the
// defaults above.
type Options struct {
	InitialCapacity int    `yaml:"initial_capacity"`
	BlockWidth      int    `yaml:"block_width"`
	PendingEntries  int    `yaml:"pending_entries"`
	QueuePolicy     string `yaml:"queue_policy"`
}

func NewDefaultOptions() *Options {
	return &Options{
		InitialCapacity: DefaultInitialCapacity,
		BlockWidth:      DefaultBlockWidth,
		PendingEntries:  DefaultPendingEntries,
		QueuePolicy:     QueuePolicyReject,
	}
}

// Load reads options from a yaml file. Fields missing from the file keep
// their default values.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	opts := NewDefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Trace(err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) Validate() error {
	if o.InitialCapacity < 0 {
		return apperror.NewAppError(apperror.ErrorTypeInvalidCapacity, "initial_capacity must not be negative")
	}
	if o.BlockWidth < 2 {
		return apperror.NewAppError(apperror.ErrorTypeInvalidConfig, "block_width must be at least 2")
	}
	if o.PendingEntries <= 0 {
		return apperror.NewAppError(apperror.ErrorTypeInvalidConfig, "pending_entries must be positive")
	}
	switch o.QueuePolicy {
	case QueuePolicyReject, QueuePolicyDropOldest:
	default:
		return apperror.NewAppError(apperror.ErrorTypeInvalidConfig, "unknown queue_policy: "+o.QueuePolicy)
	}
	return nil
}
