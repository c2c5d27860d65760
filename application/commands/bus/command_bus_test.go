package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	Fail bool
}

func (c testCommand) Validate() error {
	if c.Fail {
		return errors.New("invalid command")
	}
	return nil
}

type otherCommand struct{}

func (otherCommand) Validate() error { return nil }

func TestCommandBus_SendDispatchesByType(t *testing.T) {
	bus := NewCommandBus()

	var handled bool
	err := bus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	}))
	require.NoError(t, err)

	err = bus.Send(context.Background(), testCommand{})
	assert.NoError(t, err)
	assert.True(t, handled)
}

func TestCommandBus_SendValidatesFirst(t *testing.T) {
	bus := NewCommandBus()

	var handled bool
	_ = bus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	}))

	err := bus.Send(context.Background(), testCommand{Fail: true})
	assert.Error(t, err)
	assert.False(t, handled)
}

func TestCommandBus_SendUnregisteredType(t *testing.T) {
	bus := NewCommandBus()

	err := bus.Send(context.Background(), otherCommand{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestCommandBus_RegisterRejectsDuplicates(t *testing.T) {
	bus := NewCommandBus()

	noop := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })
	require.NoError(t, bus.Register(testCommand{}, noop))
	assert.Error(t, bus.Register(testCommand{}, noop))
}

func TestCommandBus_MiddlewareWrapsHandlers(t *testing.T) {
	var order []string
	mw := func(next CommandHandler) CommandHandler {
		return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
			order = append(order, "middleware")
			return next.Handle(ctx, cmd)
		})
	}
	bus := NewCommandBus(mw)

	_ = bus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		order = append(order, "handler")
		return nil
	}))

	require.NoError(t, bus.Send(context.Background(), testCommand{}))
	assert.Equal(t, []string{"middleware", "handler"}, order)
}
