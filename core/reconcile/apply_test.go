package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) ApplyAvailability(ctx context.Context, toAvailable, toSoldOut []string) error {
	args := m.Called(ctx, toAvailable, toSoldOut)
	return args.Error(0)
}

func TestApplyAvailability(t *testing.T) {
	ctx := context.Background()
	plan := &AvailabilityPlan[string]{ToAvailable: []string{"a"}, ToSoldOut: []string{"b"}}

	t.Run("Applies", func(t *testing.T) {
		w := new(mockWriter)
		w.On("ApplyAvailability", ctx, []string{"a"}, []string{"b"}).Return(nil)

		n, err := ApplyAvailability[string](ctx, w, plan, Options{})
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		w.AssertExpectations(t)
	})

	t.Run("DryRun", func(t *testing.T) {
		w := new(mockWriter)

		n, err := ApplyAvailability[string](ctx, w, plan, Options{DryRun: true})
		assert.NoError(t, err)
		assert.Zero(t, n)
		w.AssertNotCalled(t, "ApplyAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyPlan", func(t *testing.T) {
		w := new(mockWriter)

		n, err := ApplyAvailability[string](ctx, w, &AvailabilityPlan[string]{}, Options{})
		assert.NoError(t, err)
		assert.Zero(t, n)
		w.AssertNotCalled(t, "ApplyAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("WriterFails", func(t *testing.T) {
		w := new(mockWriter)
		w.On("ApplyAvailability", ctx, mock.Anything, mock.Anything).Return(errors.New("deadlock"))

		n, err := ApplyAvailability[string](ctx, w, plan, Options{})
		assert.ErrorContains(t, err, "deadlock")
		assert.Zero(t, n)
	})
}
