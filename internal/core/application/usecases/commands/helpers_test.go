package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) NextID() kernel.ID {
	args := m.Called()
	return args.Get(0).(kernel.ID)
}

func (m *MockOrderStore) Put(o *order.Order) {
	m.Called(o)
}

func (m *MockOrderStore) Get(id kernel.ID) (*order.Order, bool) {
	args := m.Called(id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1)
}

func (m *MockOrderStore) List() []*order.Order {
	args := m.Called()
	return args.Get(0).([]*order.Order)
}

func (m *MockOrderStore) Remove(id kernel.ID) {
	m.Called(id)
}

func (m *MockOrderStore) Update(id kernel.ID, fn func(o *order.Order) error) (*order.Order, bool, error) {
	args := m.Called(id, fn)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *MockOrderStore) RemoveIf(id kernel.ID, check func(o *order.Order) error) error {
	return m.Called(id, check).Error(0)
}

func (m *MockOrderStore) Len() int {
	return m.Called().Int(0)
}

// fixture wires the handlers against a real in-memory store and a clock
// fixed at 2024-01-01.
type fixture struct {
	store  *orderrepo.MemoryOrderStore
	clock  *clock.Fixed
	create commands.CreateOrderCommandHandler
	update commands.UpdateOrderCommandHandler
	delete commands.DeleteOrderCommandHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := orderrepo.NewMemoryOrderStore()
	clk := fixedClock()
	logger := newLogger()

	return &fixture{
		store:  store,
		clock:  clk,
		create: commands.NewCreateOrderCommandHandler(store, clk, logger),
		update: commands.NewUpdateOrderCommandHandler(store, logger),
		delete: commands.NewDeleteOrderCommandHandler(store, logger),
	}
}

// createOrder places an order with a single (P1, 1, 100.0) entry.
func (f *fixture) createOrder(t *testing.T) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand("sample", kernel.Date{}, []order.Entry{mustEntry(t, "P1", 1, "100.0")})
	require.NoError(t, err)

	created, err := f.create.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return created
}

// moveTo walks an order through the status graph using update commands.
func (f *fixture) moveTo(t *testing.T, id kernel.ID, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		_, err := f.update.Handle(t.Context(), statusPatch(t, id, s))
		require.NoError(t, err)
	}
}

func statusPatch(t *testing.T, id kernel.ID, s order.Status) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(id, nil, nil, &s)
	require.NoError(t, err)
	return cmd
}

func descriptionPatch(t *testing.T, id kernel.ID, d string) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(id, &d, nil, nil)
	require.NoError(t, err)
	return cmd
}

func mustEntry(t *testing.T, code string, quantity int, price string) order.Entry {
	t.Helper()
	e, err := order.NewEntry(code, "Product "+code, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return e
}

func fixedClock() *clock.Fixed {
	return clock.NewFixed(time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC))
}

func newLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
