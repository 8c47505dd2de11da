package ledger

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hkdtax/hkdtax/internal/platform/httpx"
	"github.com/hkdtax/hkdtax/internal/shared"
)

// Vietnamese book titles used in the export header comment.
var bookTitles = map[BookID]string{
	BookS1: "Sổ doanh thu bán hàng hóa, dịch vụ",
	BookS2: "Sổ theo dõi vật liệu, hàng hóa",
	BookS3: "Sổ chi phí sản xuất, kinh doanh",
	BookS4: "Sổ theo dõi thuế phải nộp",
	BookS5: "Sổ theo dõi lao động, tiền lương",
	BookS6: "Sổ quỹ tiền mặt",
	BookS7: "Sổ tiền gửi ngân hàng",
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	book, err := ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", book))

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	_ = cw.Write([]string{bookTitles[book]})

	var total int64
	switch book {
	case BookS1:
		_ = cw.Write([]string{"id", "date", "invoiceNo", "invoiceDate", "description", "rev010", "rev020", "rev030", "rev040", "total"})
		for _, e := range h.store.ListS1() {
			_ = cw.Write([]string{e.ID, e.Date, e.InvoiceNo, e.InvoiceDate, e.Description, vnd(e.Rev010), vnd(e.Rev020), vnd(e.Rev030), vnd(e.Rev040), vnd(e.Total())})
			total += e.Total()
		}
	case BookS2:
		_ = cw.Write([]string{"id", "date", "item", "unit", "code", "inQty", "inTotal", "outQty", "outTotal", "stockQty", "stockTotal"})
		for _, e := range h.store.ListS2() {
			_ = cw.Write([]string{e.ID, e.Date, e.Item, e.Unit, e.Code, vnd(e.InQty), vnd(e.InTotal()), vnd(e.OutQty), vnd(e.OutTotal()), vnd(e.StockQty), vnd(e.StockTotal())})
			total += e.StockTotal()
		}
	case BookS3:
		_ = cw.Write([]string{"id", "date", "docNo", "description", "raw", "labor", "management", "total"})
		for _, e := range h.store.ListS3() {
			_ = cw.Write([]string{e.ID, e.Date, e.DocNo, e.Description, vnd(e.Raw), vnd(e.Labor), vnd(e.Management), vnd(e.Total())})
			total += e.Total()
		}
	case BookS4:
		_ = cw.Write([]string{"id", "date", "docNo", "description", "taxType", "payable", "paid", "balance"})
		for _, e := range h.store.ListS4() {
			_ = cw.Write([]string{e.ID, e.Date, e.DocNo, e.Description, e.TaxType, vnd(e.Payable), vnd(e.Paid), vnd(e.Balance())})
			total += e.Paid
		}
	case BookS5:
		_ = cw.Write([]string{"id", "date", "name", "position", "salary", "bonus", "net"})
		for _, e := range h.store.ListS5() {
			_ = cw.Write([]string{e.ID, e.Date, e.Name, e.Position, vnd(e.Salary), vnd(e.Bonus), vnd(e.Net())})
			total += e.Net()
		}
	case BookS6:
		_ = cw.Write([]string{"id", "date", "docNo", "description", "income", "expense", "balance"})
		entries := h.store.ListS6()
		balances := CashBalances(entries)
		for i, e := range entries {
			_ = cw.Write([]string{e.ID, e.Date, e.DocNo, e.Description, vnd(e.Income), vnd(e.Expense), vnd(balances[i])})
		}
		if len(balances) > 0 {
			total = balances[len(balances)-1]
		}
	case BookS7:
		_ = cw.Write([]string{"id", "date", "docNo", "description", "deposit", "withdraw", "balance"})
		entries := h.store.ListS7()
		balances := BankBalances(entries)
		for i, e := range entries {
			_ = cw.Write([]string{e.ID, e.Date, e.DocNo, e.Description, vnd(e.Deposit), vnd(e.Withdraw), vnd(balances[i])})
		}
		if len(balances) > 0 {
			total = balances[len(balances)-1]
		}
	}

	_ = cw.Write([]string{"Tổng cộng", shared.FormatVND(total)})
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("csv export", slog.String("book", string(book)), slog.Any("error", err))
	}
}

func vnd(v int64) string { return strconv.FormatInt(v, 10) }
