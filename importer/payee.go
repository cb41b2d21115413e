package importer

import (
	"strings"

	"github.com/johnstarich/go/regext"
)

var (
	payeeReferences = regext.MustCompile(`
		(?:
			\s+ \x23 \s* \d+     # store numbers, i.e. "Whole Foods #10"
			| \s+ \d{4,}         # long reference numbers
			| \s+ x+ \d{2,}      # masked card numbers, i.e. "xxxx1234"
		)+ \s* $
	`)
	payeeSpaces = regext.MustCompile(`\s{2,}`)
)

// normalizePayee trims reference numbers and repeated whitespace from bank-provided payee names
func normalizePayee(payee string) string {
	payee = strings.TrimSpace(payee)
	payee = payeeReferences.ReplaceAllString(payee, "")
	return payeeSpaces.ReplaceAllString(payee, " ")
}
