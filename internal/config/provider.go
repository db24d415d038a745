package config

import (
	"context"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// File re-reads the configuration from disk on every call, so saved edits
// apply to the next computation pass without a restart.
type File struct {
	Path string
}

func (f File) Config(ctx context.Context) (domain.Config, error) {
	return Load(f.Path)
}

// Static always returns the same configuration. Used by tests and one-shot
// computations.
type Static domain.Config

func (s Static) Config(context.Context) (domain.Config, error) {
	return domain.Config(s), nil
}
