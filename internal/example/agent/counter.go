package agent

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
)

// DefaultCondition is the success condition used by NewCounter when none is
// given.
const DefaultCondition = `count > 2`

// CounterEnv is the environment a Counter condition is evaluated against.
type CounterEnv struct {
	Count int `expr:"count"`
}

// Counter is an external 0-based counter with a success condition.
type Counter struct {
	condition string
	program   *vm.Program
	count     int
}

// NewCounter compiles condition, an expr-lang boolean expression over
// "count". An empty condition uses DefaultCondition.
func NewCounter(condition string) (*Counter, error) {
	if condition == "" {
		condition = DefaultCondition
	}
	program, err := expr.Compile(condition,
		expr.Env(CounterEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile counter condition %q: %w", condition, err)
	}
	return &Counter{condition: condition, program: program}, nil
}

// Increment evaluates the condition against the current count, then adds one
// to the count. It returns Success if the condition held, Failure otherwise.
// Failing to evaluate the condition panics.
func (c *Counter) Increment() behaviortree.Status {
	result, err := expr.Run(c.program, CounterEnv{Count: c.count})
	c.count++
	if err != nil {
		panic(fmt.Errorf("evaluate counter condition %q: %w", c.condition, err))
	}
	if ok, _ := result.(bool); ok {
		return behaviortree.Success
	}
	return behaviortree.Failure
}

// Count returns the current count, i.e. the number of increments so far.
func (c *Counter) Count() int { return c.count }

// Condition returns the source of the success condition.
func (c *Counter) Condition() string { return c.condition }
