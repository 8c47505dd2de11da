// Package ledger holds the seven statutory accounting books (S1..S7) and the
// in-memory store that owns their entries.
package ledger

import (
	"fmt"

	"github.com/hkdtax/hkdtax/internal/shared"
)

// BookID tags one of the seven statutory books.
type BookID string

// Statutory book identifiers per the household-business accounting circular.
const (
	BookS1 BookID = "S1" // revenue
	BookS2 BookID = "S2" // inventory
	BookS3 BookID = "S3" // cost
	BookS4 BookID = "S4" // tax payments
	BookS5 BookID = "S5" // payroll
	BookS6 BookID = "S6" // cash
	BookS7 BookID = "S7" // bank
)

// ParseBookID validates a book id from an external caller.
func ParseBookID(s string) (BookID, error) {
	switch BookID(s) {
	case BookS1, BookS2, BookS3, BookS4, BookS5, BookS6, BookS7:
		return BookID(s), nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownBook, s)
}

// Entry is implemented by every book entry variant. The interface is sealed:
// the store only accepts the seven types below.
type Entry interface {
	Book() BookID
	entryID() string
}

// S1RevenueEntry records one revenue transaction split across the four
// presumptive-tax categories. The total is always derived, never stored.
type S1RevenueEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	InvoiceNo   string `json:"invoiceNo" validate:"required"`
	InvoiceDate string `json:"invoiceDate" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
	Rev010      int64  `json:"rev010" validate:"min=0"`
	Rev020      int64  `json:"rev020" validate:"min=0"`
	Rev030      int64  `json:"rev030" validate:"min=0"`
	Rev040      int64  `json:"rev040" validate:"min=0"`
}

// Book implements Entry.
func (S1RevenueEntry) Book() BookID { return BookS1 }

func (e S1RevenueEntry) entryID() string { return e.ID }

// Total is the sum of the four category amounts.
func (e S1RevenueEntry) Total() int64 {
	return e.Rev010 + e.Rev020 + e.Rev030 + e.Rev040
}

// S2InventoryEntry records stock movement for one item.
type S2InventoryEntry struct {
	ID         string `json:"id"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Item       string `json:"item" validate:"required"`
	Unit       string `json:"unit"`
	Code       string `json:"code"`
	InQty      int64  `json:"inQty" validate:"min=0"`
	InPrice    int64  `json:"inPrice" validate:"min=0"`
	OutQty     int64  `json:"outQty" validate:"min=0"`
	OutPrice   int64  `json:"outPrice" validate:"min=0"`
	StockQty   int64  `json:"stockQty" validate:"min=0"`
	StockPrice int64  `json:"stockPrice" validate:"min=0"`
}

// Book implements Entry.
func (S2InventoryEntry) Book() BookID { return BookS2 }

func (e S2InventoryEntry) entryID() string { return e.ID }

// InTotal is quantity times price for goods received.
func (e S2InventoryEntry) InTotal() int64 { return e.InQty * e.InPrice }

// OutTotal is quantity times price for goods issued.
func (e S2InventoryEntry) OutTotal() int64 { return e.OutQty * e.OutPrice }

// StockTotal is quantity times price for goods on hand.
func (e S2InventoryEntry) StockTotal() int64 { return e.StockQty * e.StockPrice }

// S3CostEntry records a production/business cost split by component.
type S3CostEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	DocNo       string `json:"docNo" validate:"required"`
	Description string `json:"description"`
	Raw         int64  `json:"raw" validate:"min=0"`
	Labor       int64  `json:"labor" validate:"min=0"`
	Management  int64  `json:"management" validate:"min=0"`
}

// Book implements Entry.
func (S3CostEntry) Book() BookID { return BookS3 }

func (e S3CostEntry) entryID() string { return e.ID }

// Total is the sum of the cost components.
func (e S3CostEntry) Total() int64 { return e.Raw + e.Labor + e.Management }

// S4TaxPaymentEntry records tax obligations and payments to the state budget.
type S4TaxPaymentEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	DocNo       string `json:"docNo" validate:"required"`
	Description string `json:"description"`
	TaxType     string `json:"taxType" validate:"required"`
	Payable     int64  `json:"payable" validate:"min=0"`
	Paid        int64  `json:"paid" validate:"min=0"`
}

// Book implements Entry.
func (S4TaxPaymentEntry) Book() BookID { return BookS4 }

func (e S4TaxPaymentEntry) entryID() string { return e.ID }

// Balance is the outstanding amount still payable. May be negative when
// overpaid; that is the carried-forward credit.
func (e S4TaxPaymentEntry) Balance() int64 { return e.Payable - e.Paid }

// S5PayrollEntry records one salary payment.
type S5PayrollEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
	Salary   int64  `json:"salary" validate:"min=0"`
	Bonus    int64  `json:"bonus" validate:"min=0"`
}

// Book implements Entry.
func (S5PayrollEntry) Book() BookID { return BookS5 }

func (e S5PayrollEntry) entryID() string { return e.ID }

// Net is the amount paid out.
func (e S5PayrollEntry) Net() int64 { return e.Salary + e.Bonus }

// S6CashEntry records a cash receipt or disbursement. The running balance is
// derived over the whole book, see CashBalances.
type S6CashEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	DocNo       string `json:"docNo" validate:"required"`
	Description string `json:"description"`
	Income      int64  `json:"income" validate:"min=0"`
	Expense     int64  `json:"expense" validate:"min=0"`
}

// Book implements Entry.
func (S6CashEntry) Book() BookID { return BookS6 }

func (e S6CashEntry) entryID() string { return e.ID }

// S7BankEntry records a bank deposit or withdrawal. The running balance is
// derived over the whole book, see BankBalances.
type S7BankEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	DocNo       string `json:"docNo" validate:"required"`
	Description string `json:"description"`
	Deposit     int64  `json:"deposit" validate:"min=0"`
	Withdraw    int64  `json:"withdraw" validate:"min=0"`
}

// Book implements Entry.
func (S7BankEntry) Book() BookID { return BookS7 }

func (e S7BankEntry) entryID() string { return e.ID }

// CashBalances derives the running balance per position of the cash book.
func CashBalances(entries []S6CashEntry) []int64 {
	balances := make([]int64, len(entries))
	var running int64
	for i, e := range entries {
		running += e.Income - e.Expense
		balances[i] = running
	}
	return balances
}

// BankBalances derives the running balance per position of the bank book.
func BankBalances(entries []S7BankEntry) []int64 {
	balances := make([]int64, len(entries))
	var running int64
	for i, e := range entries {
		running += e.Deposit - e.Withdraw
		balances[i] = running
	}
	return balances
}
