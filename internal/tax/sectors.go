// Package tax implements the presumptive-tax rate tables and the standalone
// quick-calculation and late-filing penalty tools.
package tax

// Rates are fixed-point basis points of 1/10000 so that
// amount*rate/10000 stays in integer đồng.
const rateScale = 10_000

// Sector is one presumptive-tax bracket keyed by business activity type.
type Sector struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	VATRateBp int64  `json:"vatRateBp"`
	PITRateBp int64  `json:"pitRateBp"`
}

// Presumptive-tax sectors per the household-business regime. Order matters:
// it matches the four S1 revenue categories (010..040).
var sectors = []Sector{
	{ID: "010", Name: "Phân phối, cung cấp hàng hóa", VATRateBp: 100, PITRateBp: 50},
	{ID: "020", Name: "Dịch vụ, xây dựng không bao thầu", VATRateBp: 500, PITRateBp: 200},
	{ID: "030", Name: "Sản xuất, vận tải, có bao thầu", VATRateBp: 300, PITRateBp: 150},
	{ID: "040", Name: "Cho thuê tài sản, đại lý, xổ số", VATRateBp: 500, PITRateBp: 500},
}

// Sectors returns the presumptive-tax sector table in category order.
func Sectors() []Sector {
	out := make([]Sector, len(sectors))
	copy(out, sectors)
	return out
}

// VAT computes the presumptive VAT for a sector revenue amount.
func (s Sector) VAT(revenue int64) int64 {
	return revenue * s.VATRateBp / rateScale
}

// PIT computes the presumptive PIT for a sector revenue amount.
func (s Sector) PIT(revenue int64) int64 {
	return revenue * s.PITRateBp / rateScale
}
