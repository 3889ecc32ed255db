package queries

import (
	"context"

	"homestay-api/internal/usecase/shared"
)

type BackendQueries interface {
	Health(ctx context.Context) shared.Health
	DataSource() shared.DataSource
}

type backendQueriesImpl struct {
	control shared.BackendControl
}

func NewBackendQueries(control shared.BackendControl) BackendQueries {
	return &backendQueriesImpl{control: control}
}

func (q *backendQueriesImpl) Health(ctx context.Context) shared.Health {
	return q.control.Health(ctx)
}

func (q *backendQueriesImpl) DataSource() shared.DataSource {
	return q.control.DataSource()
}
