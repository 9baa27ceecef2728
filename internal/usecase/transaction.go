package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/infra/logger"
)

// Transaction runs operations in order and, when one fails, runs the
// compensations of the operations that already succeeded in reverse order.
type Transaction struct {
	operations []Operation
}

type Operation struct {
	Name       string
	Fn         func(context.Context) error
	Compensate *Compensation
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, Operation{Name: name, Fn: fn})
}

// AddCompensation undoes the most recently added operation.
func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	if len(t.operations) == 0 {
		return
	}
	t.operations[len(t.operations)-1].Compensate = &Compensation{Name: name, Fn: fn}
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			rolledBack := t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, rolledBack)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) int {
	rolledBack := 0
	for i := failedAt - 1; i >= 0; i-- {
		comp := t.operations[i].Compensate
		if comp == nil {
			continue
		}
		if err := comp.Fn(ctx); err != nil {
			logger.FromContext(ctx).Error("compensation failed, data may be inconsistent",
				zap.String("compensation", comp.Name), zap.Error(err))
			continue
		}
		rolledBack++
	}
	return rolledBack
}
