package commands_test

import (
	"errors"
	"sync"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	f := newFixture(t)

	updated, err := f.update.Handle(t.Context(), descriptionPatch(t, 99, "x"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	assert.Empty(t, f.store.List())
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newFixture(t)

	_, err := f.update.Handle(t.Context(), commands.UpdateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}

func TestUpdateOrderCommandHandler_Handle_Lifecycle(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)

	processing, err := f.update.Handle(t.Context(), statusPatch(t, created.ID(), order.Processing))
	require.NoError(t, err)
	assert.Equal(t, order.Processing, processing.Status())

	completed, err := f.update.Handle(t.Context(), statusPatch(t, created.ID(), order.Completed))
	require.NoError(t, err)
	assert.Equal(t, order.Completed, completed.Status())

	_, err = f.update.Handle(t.Context(), descriptionPatch(t, created.ID(), "x"))
	require.ErrorIs(t, err, errs.ErrStateIsTerminal)

	stored, _ := f.store.Get(created.ID())
	assert.Equal(t, order.Completed, stored.Status())
	assert.Equal(t, "sample", stored.Description())
}

func TestUpdateOrderCommandHandler_Handle_TerminalStates(t *testing.T) {
	testCases := []struct {
		name string
		path []order.Status
	}{
		{name: "completed", path: []order.Status{order.Processing, order.Completed}},
		{name: "cancelled", path: []order.Status{order.Processing, order.Cancelled}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			created := f.createOrder(t)
			f.moveTo(t, created.ID(), tc.path...)

			patches := map[string]commands.UpdateOrderCommand{
				"description": descriptionPatch(t, created.ID(), "x"),
				"entries":     entriesPatch(t, created.ID(), mustEntry(t, "P2", 1, "1")),
				"status":      statusPatch(t, created.ID(), order.Processing),
				"same status": statusPatch(t, created.ID(), tc.path[len(tc.path)-1]),
			}
			for name, patch := range patches {
				_, err := f.update.Handle(t.Context(), patch)
				require.ErrorIs(t, err, errs.ErrStateIsTerminal, name)
			}
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_InvalidTransitions(t *testing.T) {
	testCases := []struct {
		name string
		path []order.Status
		to   order.Status
	}{
		{name: "created to cancelled", to: order.Cancelled},
		{name: "created to completed", to: order.Completed},
		{name: "processing to created", path: []order.Status{order.Processing}, to: order.Created},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			created := f.createOrder(t)
			f.moveTo(t, created.ID(), tc.path...)
			before, _ := f.store.Get(created.ID())

			_, err := f.update.Handle(t.Context(), statusPatch(t, created.ID(), tc.to))

			require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
			var transitionErr *errs.TransitionIsInvalidError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, before.Status().String(), transitionErr.From)
			assert.Equal(t, tc.to.String(), transitionErr.To)

			after, _ := f.store.Get(created.ID())
			assert.Equal(t, before.Status(), after.Status())
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_FailedPatchPersistsNothing(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	description := "should not stick"
	cancelled := order.Cancelled
	cmd, err := commands.NewUpdateOrderCommand(
		created.ID(),
		&description,
		[]order.Entry{mustEntry(t, "P9", 9, "9")},
		&cancelled,
	)
	require.NoError(t, err)

	_, err = f.update.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	stored, _ := f.store.Get(created.ID())
	assert.Equal(t, "sample", stored.Description())
	assert.Equal(t, "P1", stored.Entries()[0].ProductCode())
	assert.True(t, decimal.NewFromInt(100).Equal(stored.Amount()))
}

func TestUpdateOrderCommandHandler_Handle_Fields(t *testing.T) {
	t.Run("description only keeps entries and amount", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)

		updated, err := f.update.Handle(t.Context(), descriptionPatch(t, created.ID(), "renamed"))

		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Description())
		assert.Equal(t, created.Entries(), updated.Entries())
		assert.True(t, created.Amount().Equal(updated.Amount()))
		assert.Equal(t, order.Created, updated.Status())
	})

	t.Run("entries replace old ones and recompute amount", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)

		updated, err := f.update.Handle(t.Context(), entriesPatch(t, created.ID(),
			mustEntry(t, "P2", 2, "50.0"),
			mustEntry(t, "P3", 1, "75.0"),
		))

		require.NoError(t, err)
		assert.Len(t, updated.Entries(), 2)
		assert.True(t, decimal.NewFromInt(175).Equal(updated.Amount()))
		assert.Equal(t, "sample", updated.Description())

		stored, _ := f.store.Get(created.ID())
		assert.True(t, decimal.NewFromInt(175).Equal(stored.Amount()))
	})

	t.Run("empty entries leave entries and amount untouched", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)
		cmd, err := commands.NewUpdateOrderCommand(created.ID(), nil, []order.Entry{}, nil)
		require.NoError(t, err)

		updated, err := f.update.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, created.Entries(), updated.Entries())
		assert.True(t, created.Amount().Equal(updated.Amount()))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)

		updated, err := f.update.Handle(t.Context(), statusPatch(t, created.ID(), order.Created))

		require.NoError(t, err)
		assert.Equal(t, order.Created, updated.Status())
	})

	t.Run("id and order date are preserved", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)
		f.clock.Set(f.clock.Now().AddDate(0, 1, 0))

		updated, err := f.update.Handle(t.Context(), entriesPatch(t, created.ID(), mustEntry(t, "P2", 1, "1")))

		require.NoError(t, err)
		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, "2024-01-01", updated.OrderDate().String())
	})

	t.Run("returned order is a copy", func(t *testing.T) {
		f := newFixture(t)
		created := f.createOrder(t)

		updated, err := f.update.Handle(t.Context(), descriptionPatch(t, created.ID(), "renamed"))
		require.NoError(t, err)
		require.NoError(t, updated.ChangeDescription("changed by caller"))

		stored, _ := f.store.Get(created.ID())
		assert.Equal(t, "renamed", stored.Description())
	})
}

func TestUpdateOrderCommandHandler_Handle_PatchesInsideStoreUpdate(t *testing.T) {
	completed, err := order.RestoreOrder(5, "done", mustDate(t), order.Completed, []order.Entry{mustEntry(t, "P1", 1, "1")})
	require.NoError(t, err)

	var patchErr error
	store := new(MockOrderStore)
	store.On("Update", kernel.ID(5), mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(o *order.Order) error)
			patchErr = fn(completed.Clone())
		}).
		Return(nil, true, errs.NewStateIsTerminalError("order 5", "COMPLETED")).
		Once()

	h := commands.NewUpdateOrderCommandHandler(store, newLogger())
	_, err = h.Handle(t.Context(), descriptionPatch(t, 5, "x"))

	require.ErrorIs(t, err, errs.ErrStateIsTerminal)
	require.ErrorIs(t, patchErr, errs.ErrStateIsTerminal)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Get", mock.Anything)
	store.AssertNotCalled(t, "Put", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ConcurrentTerminalTransitions(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	f.moveTo(t, created.ID(), order.Processing)

	const workers = 50
	targets := make([]commands.UpdateOrderCommand, workers)
	for i := range workers {
		to := order.Completed
		if i%2 == 1 {
			to = order.Cancelled
		}
		targets[i] = statusPatch(t, created.ID(), to)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []order.Status
		conflicts int
	)
	for i := range workers {
		wg.Add(1)
		go func(cmd commands.UpdateOrderCommand) {
			defer wg.Done()
			updated, err := f.update.Handle(t.Context(), cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, updated.Status())
			case errors.Is(err, errs.ErrStateIsTerminal):
				conflicts++
			}
		}(targets[i])
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, workers-1, conflicts)
	stored, ok := f.store.Get(created.ID())
	require.True(t, ok)
	assert.Equal(t, winners[0], stored.Status())
}

func TestUpdateOrderCommandHandler_Handle_RacingDeleteNeverResurrects(t *testing.T) {
	for range 20 {
		f := newFixture(t)
		created := f.createOrder(t)
		update := descriptionPatch(t, created.ID(), "late edit")
		remove := deleteCommand(t, created.ID())

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = f.update.Handle(t.Context(), update)
		}()
		go func() {
			defer wg.Done()
			_ = f.delete.Handle(t.Context(), remove)
		}()
		wg.Wait()

		_, ok := f.store.Get(created.ID())
		assert.False(t, ok)
	}
}

func entriesPatch(t *testing.T, id kernel.ID, entries ...order.Entry) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(id, nil, entries, nil)
	require.NoError(t, err)
	return cmd
}

func mustDate(t *testing.T) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate("2024-01-01")
	require.NoError(t, err)
	return d
}
