package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (c *stubChecker) Name() string { return c.name }

func (c *stubChecker) Check(context.Context) error {
	c.calls++
	return c.err
}

func TestReady(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))

	ok := &stubChecker{name: "postgres"}
	assert.NoError(t, NewService(ok).Ready(context.Background()))

	down := errors.New("connection refused")
	bad := &stubChecker{name: "postgres", err: down}
	after := &stubChecker{name: "other"}
	err := NewService(ok, bad, after).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "postgres: connection refused")
	assert.Zero(t, after.calls)
}
