package pipe

import (
	"github.com/pkg/errors"
)

// Op is one named step of a larger operation
type Op interface {
	Name() string
	Do() error
}

type namedOp struct {
	name string
	do   func() error
}

func (o namedOp) Name() string {
	return o.name
}

func (o namedOp) Do() error {
	return o.do()
}

// Step wraps a function into an Op
func Step(name string, do func() error) Op {
	return namedOp{name: name, do: do}
}

// Ops run in series, stopping on the first error
type Ops []Op

// Do runs each Op. The first error is wrapped with the failing Op's name.
func (ops Ops) Do() error {
	for _, op := range ops {
		if err := op.Do(); err != nil {
			return errors.Wrapf(err, "Failed to %s", op.Name())
		}
	}
	return nil
}
