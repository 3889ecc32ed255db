//go:build unit

package queries_test

import (
	"context"
	"testing"

	"homestay-api/internal/usecase/queries"
	"homestay-api/internal/usecase/shared"
	sharedmock "homestay-api/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBackendQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := sharedmock.NewMockBackendControl(ctrl)
	q := queries.NewBackendQueries(control)

	want := shared.Health{Healthy: true, Source: shared.DataSourceFallback, RoomsLoaded: 4}
	control.EXPECT().Health(gomock.Any()).Return(want)
	control.EXPECT().DataSource().Return(shared.DataSourceFallback)

	assert.Equal(t, want, q.Health(context.Background()))
	assert.Equal(t, shared.DataSourceFallback, q.DataSource())
}
