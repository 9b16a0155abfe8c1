package source

import (
	"context"

	"github.com/wonny/gridsight/internal/reliability"
)

// Source loads the reliability dataset once at process start.
type Source interface {
	Load(ctx context.Context) (*reliability.Dataset, error)
}
