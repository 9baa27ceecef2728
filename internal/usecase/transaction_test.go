package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-landing/internal/usecase"
)

func TestTransaction_RollsBackInReverse(t *testing.T) {
	var trail []string
	step := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			trail = append(trail, name)
			return err
		}
	}
	boom := errors.New("boom")

	txn := usecase.NewTransaction()
	txn.AddOperation("a", step("a", nil))
	txn.AddCompensation("undo_a", step("undo_a", nil))
	txn.AddOperation("b", step("b", nil))
	txn.AddCompensation("undo_b", step("undo_b", nil))
	txn.AddOperation("c", step("c", boom))
	txn.AddCompensation("undo_c", step("undo_c", nil))

	err := txn.Execute(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rolled back 2 operations")
	assert.Equal(t, []string{"a", "b", "c", "undo_b", "undo_a"}, trail)
}

func TestTransaction_FailedCompensationIsNotCounted(t *testing.T) {
	txn := usecase.NewTransaction()
	txn.AddOperation("a", func(context.Context) error { return nil })
	txn.AddCompensation("undo_a", func(context.Context) error { return errors.New("stuck") })
	txn.AddOperation("b", func(context.Context) error { return errors.New("boom") })

	err := txn.Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rolled back 0 operations")
}
