// Package export serializes transaction lists for download. The format
// is a fixed seven-column CSV where only the free-text Notes field is
// quoted.
package export

import (
	"strings"
	"time"

	"spendo/internal/transaction"
)

const header = "ID,Date,Type,Amount,Category,Method,Notes"

// displayDateFormat matches the format used when rendering dates in the
// clients, not the raw timestamp.
const displayDateFormat = "Jan 2, 2006"

// CSV renders transactions one row per record in input order. Notes are
// double-quoted with embedded quotes doubled so values containing commas
// or quotes round-trip losslessly.
func CSV(txs []transaction.Transaction) string {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteString("\n")

	for i, tx := range txs {
		if i > 0 {
			sb.WriteString("\n")
		}

		fields := []string{
			tx.ID.String(),
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Amount.String(),
			string(tx.Category),
			string(tx.Method),
			quote(tx.Notes),
		}

		sb.WriteString(strings.Join(fields, ","))
	}

	return sb.String()
}

// FormatDate renders a date the way the clients display it.
func FormatDate(t time.Time) string {
	return t.Format(displayDateFormat)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
