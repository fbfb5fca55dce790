package tellerxgo

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	entryTimeLayout = "02-01-2006 15:04:05"
	listingRule     = 60
)

func money(symbol string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", symbol, amount.StringFixed(2))
}

// WriteStatement renders the ledger of acct, optionally narrowed to one entry kind,
// followed by the current balance.
func WriteStatement(w io.Writer, acct *Account, kind, symbol string) error {
	var sb strings.Builder
	sb.WriteString("\n========== STATEMENT ==========\n")
	n := 0
	for e := range acct.Ledger().Entries(kind) {
		fmt.Fprintf(&sb, "%s - %s - %s\n", e.Timestamp.Format(entryTimeLayout), e.Kind, money(symbol, e.Amount))
		n++
	}
	if n == 0 {
		sb.WriteString("No transactions recorded.\n")
	}
	fmt.Fprintf(&sb, "\nBalance: %s\n", money(symbol, acct.Balance()))
	sb.WriteString("===============================\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteStatementPDF renders the same statement as WriteStatement as a one table PDF,
// including the entry reference IDs.
func WriteStatementPDF(w io.Writer, acct *Account, kind, symbol string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Statement %s/%d", acct.Branch, acct.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Account statement", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Branch: %s   Number: %d", acct.Branch, acct.Number), "", 1, "L", false, 0, "")
	if c := acct.Customer(); c != nil {
		pdf.CellFormat(0, 6, tr("Holder: "+c.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	header := []struct {
		title string
		width float64
	}{
		{"Reference", 50},
		{"Date", 45},
		{"Kind", 35},
		{"Amount", 40},
	}
	for _, h := range header {
		pdf.CellFormat(h.width, 7, h.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for e := range acct.Ledger().Entries(kind) {
		pdf.CellFormat(header[0].width, 6, e.ID.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(header[1].width, 6, e.Timestamp.Format(entryTimeLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(header[2].width, 6, string(e.Kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(header[3].width, 6, money(symbol, e.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Balance: "+money(symbol, acct.Balance()), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// WriteAccount renders the listing block of a single account.
func WriteAccount(w io.Writer, acct *Account, symbol string) error {
	holder := ""
	if c := acct.Customer(); c != nil {
		holder = c.Name
	}
	_, err := fmt.Fprintf(w, "%s\nBranch:\t\t%s\nNumber:\t\t%d\nHolder:\t\t%s\nBalance:\t%s\n",
		strings.Repeat("=", listingRule),
		acct.Branch,
		acct.Number,
		holder,
		money(symbol, acct.Balance()),
	)
	return err
}
