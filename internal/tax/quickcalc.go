package tax

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QuickCalcInput carries ad hoc revenue and expense figures, independent of
// the ledger. Amounts are đồng.
type QuickCalcInput struct {
	Rev10      int64 `json:"rev10" validate:"min=0"`
	Rev5       int64 `json:"rev5" validate:"min=0"`
	Rev0       int64 `json:"rev0" validate:"min=0"`
	PITRevenue int64 `json:"pitRevenue" validate:"min=0"`
	PITExpense int64 `json:"pitExpense" validate:"min=0"`
}

// QuickCalcResult is the combined VAT and progressive-PIT outcome.
type QuickCalcResult struct {
	VAT       int64 `json:"vat"`
	PIT       int64 `json:"pit"`
	NetIncome int64 `json:"netIncome"`
	TotalTax  int64 `json:"totalTax"`
}

// pitBracket taxes the portion of net income above Floor at RateBp, walked
// from the highest floor down.
type pitBracket struct {
	Floor  int64
	RateBp int64
}

var pitBrackets = []pitBracket{
	{Floor: 160_000_000, RateBp: 3_500},
	{Floor: 100_000_000, RateBp: 3_000},
	{Floor: 60_000_000, RateBp: 2_500},
	{Floor: 20_000_000, RateBp: 2_000},
	{Floor: 10_000_000, RateBp: 1_500},
	{Floor: 5_000_000, RateBp: 1_000},
	{Floor: 0, RateBp: 500},
}

// ProgressivePIT walks the marginal brackets from the top down. Each slice of
// income is taxed at exactly one rate; the result is monotonic in netIncome.
func ProgressivePIT(netIncome int64) int64 {
	if netIncome <= 0 {
		return 0
	}
	var pit int64
	taxable := netIncome
	for _, b := range pitBrackets {
		if taxable > b.Floor {
			pit += (taxable - b.Floor) * b.RateBp / rateScale
			taxable = b.Floor
		}
	}
	return pit
}

// QuickCalc computes presumptive VAT on the rate-bucketed revenues and
// progressive PIT on net income. Rev0 is zero-rated but still validated.
func QuickCalc(in QuickCalcInput) (QuickCalcResult, error) {
	if err := validate.Struct(in); err != nil {
		return QuickCalcResult{}, err
	}

	vat := in.Rev10*1_000/rateScale + in.Rev5*500/rateScale

	netIncome := in.PITRevenue - in.PITExpense
	if netIncome < 0 {
		netIncome = 0
	}
	pit := ProgressivePIT(netIncome)

	return QuickCalcResult{
		VAT:       vat,
		PIT:       pit,
		NetIncome: netIncome,
		TotalTax:  vat + pit,
	}, nil
}
