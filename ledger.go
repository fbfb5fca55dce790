package tellerxgo

import (
	"iter"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Entry struct {
	ID        snowflake.ID
	Kind      TxKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Ledger is the append-only history of one account. Entries are only added by a
// Transaction that was applied successfully.
type Ledger struct {
	node    *snowflake.Node
	clock   Clock
	entries []Entry
}

func NewLedger(node *snowflake.Node, clock Clock) *Ledger {
	return &Ledger{
		node:  node,
		clock: clock,
	}
}

func (l *Ledger) append(t Transaction) Entry {
	e := Entry{
		ID:        l.node.Generate(),
		Kind:      t.Kind,
		Amount:    t.Amount,
		Timestamp: l.clock.Now().Truncate(time.Second),
	}
	l.entries = append(l.entries, e)
	return e
}

// Entries yields the recorded entries in insertion order. A non-empty kind keeps
// only the entries of that kind, compared case-insensitively.
func (l *Ledger) Entries(kind string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if kind != "" && !strings.EqualFold(string(e.Kind), kind) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// EntriesToday returns the entries whose timestamp falls on the clock's current date.
func (l *Ledger) EntriesToday() []Entry {
	now := l.clock.Now()
	var today []Entry
	for _, e := range l.entries {
		if sameDay(e.Timestamp, now) {
			today = append(today, e)
		}
	}
	return today
}

func (l *Ledger) Count(kind TxKind) int {
	n := 0
	for range l.Entries(string(kind)) {
		n++
	}
	return n
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
