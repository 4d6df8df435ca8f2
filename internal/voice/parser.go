// Package voice turns a speech-recognition transcript into a partial
// transaction. Parsing is best-effort: fields the parser cannot infer
// are left unset, it never fails.
package voice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"spendo/internal/category"
	"spendo/internal/transaction"
)

// Result carries the fields inferred from a transcript. Nil means the
// field could not be inferred. Category is never defaulted here; the
// registry applies the Other fallback at display time.
type Result struct {
	Amount   *decimal.Decimal  `json:"amount,omitempty"`
	Type     *transaction.Type `json:"type,omitempty"`
	Category *category.ID      `json:"category,omitempty"`
}

var (
	amountRe  = regexp.MustCompile(`(\d+)(\s*dollars|\s*usd)?`)
	incomeRe  = regexp.MustCompile(`earn|made|got|received|income|revenue`)
	expenseRe = regexp.MustCompile(`spent|paid|bought|purchased|expense`)

	// Checked in this exact order; first family matched wins.
	categoryRes = []struct {
		id category.ID
		re *regexp.Regexp
	}{
		{category.Food, regexp.MustCompile(`food|grocery|restaurant|eat|dinner|lunch|breakfast`)},
		{category.Transport, regexp.MustCompile(`transport|gas|uber|lyft|taxi|car|bus|train`)},
		{category.Utilities, regexp.MustCompile(`utility|electric|water|bill|internet|phone`)},
		{category.Entertainment, regexp.MustCompile(`movie|entertainment|game|fun|concert|ticket`)},
		{category.Shopping, regexp.MustCompile(`shop|buy|purchase|amazon|store`)},
	}
)

// Parse extracts amount, type and category hints from a transcript.
// The first run of digits is the amount; a transcript with several
// numbers uses only the first. Income keywords are checked before
// expense keywords and win when both families match.
func Parse(transcript string) Result {
	text := strings.ToLower(transcript)

	var res Result

	if m := amountRe.FindStringSubmatch(text); m != nil {
		if amount, err := decimal.NewFromString(m[1]); err == nil {
			res.Amount = &amount
		}
	}

	switch {
	case incomeRe.MatchString(text):
		res.Type = typePtr(transaction.TypeIncome)
	case expenseRe.MatchString(text):
		res.Type = typePtr(transaction.TypeExpense)
	}

	for _, c := range categoryRes {
		if c.re.MatchString(text) {
			id := c.id
			res.Category = &id

			break
		}
	}

	return res
}

func typePtr(t transaction.Type) *transaction.Type { return &t }
