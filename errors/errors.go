package errors

import (
	"strings"
)

// Errors collects independent failures, such as each rejected statement line or setting
type Errors []error

// Add records err. Nil errors are skipped and nested Errors are flattened.
func (e *Errors) Add(err error) {
	switch err := err.(type) {
	case nil:
	case Errors:
		*e = append(*e, err...)
	default:
		*e = append(*e, err)
	}
}

// Err returns nil when nothing was recorded, the only error when there is one, and e otherwise
func (e Errors) Err() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	default:
		return e
	}
}

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "\n")
}

// Messages returns each error's message in the order they were added
func (e Errors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return messages
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e Errors) Unwrap() []error {
	return e
}
