package rules

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type readerState struct {
	foundIf         bool
	foundExpression bool
	category        string
	conditions      []string
}

// Read parses hledger-style rule blocks:
//
//	if
//	whole foods
//	trader joe
//	  category Groceries
func Read(reader io.Reader) (Rules, error) {
	var rules Rules
	var state readerState

	endRule := func() error {
		if !state.foundExpression {
			if state.foundIf {
				return errors.New("If statements must have a condition and expression")
			}
			return nil
		}
		rule, err := NewRule(state.category, state.conditions...)
		if err != nil {
			return err
		}
		rules = append(rules, rule)
		state = readerState{}
		return nil
	}

	scanner := bufio.NewScanner(reader)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		var err error
		switch {
		case line == "if" || strings.HasPrefix(line, "if "):
			if state.foundExpression {
				err = endRule()
			}
			if err == nil {
				state.foundIf = true
				if condition := strings.TrimSpace(strings.TrimPrefix(line, "if")); condition != "" {
					state.conditions = append(state.conditions, condition)
				}
			}
		case state.foundIf && !state.foundExpression && !isIndented(line):
			state.conditions = append(state.conditions, line)
		case state.foundExpression && !isIndented(line):
			// an unindented expression after a finished block starts a rule without conditions
			err = endRule()
			if err == nil {
				err = foundExpression(&state, line)
			}
		default:
			err = foundExpression(&state, line)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "Rules line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := endRule(); err != nil {
		return nil, err
	}
	return rules, nil
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func foundExpression(state *readerState, line string) error {
	if state.foundIf && len(state.conditions) == 0 {
		return errors.New("Started expressions but no conditions were found")
	}
	state.foundExpression = true
	tokens := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(tokens) != 2 {
		return errors.Errorf("Rule line must have both key and value: '%s'", strings.TrimSpace(line))
	}
	key, value := tokens[0], strings.TrimSpace(tokens[1])
	switch key {
	case "category":
		state.category = value
	default:
		return errors.Errorf("Unrecognized rule key: '%s'", key)
	}
	return nil
}
