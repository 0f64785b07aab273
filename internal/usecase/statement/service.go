package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SyedMohamedHyder/BankAccount/internal/domain"
)

// timeLayout is how statement timestamps are displayed, e.g.
// "2026-08-28 15:04:05 (MST)".
const timeLayout = "2006-01-02 15:04:05 (MST)"

// Line represents one history entry on a rendered statement.
type Line struct {
	Code     string
	Kind     string
	Time     string
	Sequence uint64
}

// Statement represents an account's rendered transaction history.
type Statement struct {
	AccountNumber string
	Owner         string
	Balance       decimal.Decimal
	Lines         []Line
}

// StatementService renders account histories for display.
type StatementService struct {
	Logger *zap.Logger
}

// NewStatementService creates a new StatementService instance.
// A nil logger disables logging.
func NewStatementService(logger *zap.Logger) *StatementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatementService{Logger: logger}
}

// Render builds a statement from the account's confirmation history.
// Timestamps are already localized to the account's timezone by the domain
// layer; here they are only formatted.
func (s *StatementService) Render(acct *domain.Account) *Statement {
	history := acct.History()

	lines := make([]Line, 0, len(history))
	for _, c := range history {
		lines = append(lines, Line{
			Code:     c.Code(),
			Kind:     c.Kind.String(),
			Time:     c.Timestamp.Format(timeLayout),
			Sequence: c.Sequence,
		})
	}

	st := &Statement{
		AccountNumber: acct.Number(),
		Owner:         acct.FullName(),
		Balance:       acct.Balance(),
		Lines:         lines,
	}

	s.Logger.Debug("rendered statement",
		zap.String("account", st.AccountNumber),
		zap.Int("lines", len(st.Lines)),
	)
	return st
}

// Format renders the statement as printable text.
func (s *StatementService) Format(st *Statement) string {
	out := fmt.Sprintf("Account %s (%s)\nBalance: %s\n", st.AccountNumber, st.Owner, st.Balance)
	for _, line := range st.Lines {
		out += fmt.Sprintf("  %-10s %s  %s\n", line.Kind, line.Time, line.Code)
	}
	return out
}
