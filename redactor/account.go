package redactor

import (
	"strings"

	"go.uber.org/zap"
)

const visibleDigits = 4

// AccountID masks all but the last 4 characters of an account or card number
func AccountID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= visibleDigits {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-visibleDigits) + id[len(id)-visibleDigits:]
}

// Account returns a log field with a redacted account ID
func Account(key, id string) zap.Field {
	return zap.String(key, AccountID(id))
}
