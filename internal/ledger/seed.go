package ledger

import "context"

// Seed loads the demo bookkeeping rows for a sample tailoring household
// business. Used for local development and the hosted demo.
func (s *Store) Seed(ctx context.Context) error {
	entries := []Entry{
		S1RevenueEntry{Date: "2026-07-01", InvoiceNo: "HD001", InvoiceDate: "2026-07-01", Description: "Bán quần áo nam", Rev010: 5_000_000},
		S1RevenueEntry{Date: "2026-07-02", InvoiceNo: "HD002", InvoiceDate: "2026-07-02", Description: "Dịch vụ may đo", Rev020: 1_200_000},
		S2InventoryEntry{Date: "2026-07-01", Item: "Vải Cotton 100%", Unit: "Mét", Code: "VAT01", InQty: 100, InPrice: 50_000, OutQty: 20, OutPrice: 50_000, StockQty: 80, StockPrice: 50_000},
		S3CostEntry{Date: "2026-07-05", DocNo: "PC012", Description: "Mua vật liệu may mặc", Raw: 4_500_000, Management: 500_000},
		S4TaxPaymentEntry{Date: "2026-04-15", DocNo: "NT01", Description: "Nộp thuế GTGT Quý 1/2026", TaxType: "GTGT", Payable: 0, Paid: 1_500_000},
		S5PayrollEntry{Date: "2026-07-31", Name: "Nguyễn Văn A", Position: "Nhân viên may", Salary: 8_500_000, Bonus: 500_000},
		S6CashEntry{Date: "2026-07-01", DocNo: "PT001", Description: "Thu tiền bán hàng HD001", Income: 5_000_000},
		S6CashEntry{Date: "2026-07-05", DocNo: "PC012", Description: "Chi mua nguyên liệu", Expense: 5_000_000},
		S7BankEntry{Date: "2026-07-10", DocNo: "GNT01", Description: "Khách hàng chuyển khoản HD003", Deposit: 2_500_000},
	}
	for _, e := range entries {
		if _, err := s.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
