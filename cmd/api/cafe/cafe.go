package cafe

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "£"

const LocationMaxLength = 100

// Bounds on a submitted price. PriceMaxStored is the width of the
// coffee_price column.
const (
	PriceMaxDigits   = 8
	PriceMaxDecimals = 10
	PriceMaxStored   = 50
)

// SeatChoices are the accepted values of the "seats" field, in display order.
var SeatChoices = []string{"0-10", "11-20", "21-30", "31-40", "41-50", "50+"}

// Cafe is one stored row of the cafes table.
type Cafe struct {
	ID           int64
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	HasSockets   bool
	HasToilet    bool
	HasWifi      bool
	CanTakeCalls bool
	Seats        string
	CoffeePrice  string
}

/* Validated, typed submission of the cafe form. */
type CafeInput struct {
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	HasSockets   bool
	HasToilet    bool
	HasWifi      bool
	CanTakeCalls bool
	Seats        string
	CoffeePrice  decimal.Decimal
}

/* Converts a validated input into a row ready to be stored, formatting the price. */
func (in CafeInput) toCafe(id int64) Cafe {
	return Cafe{
		ID:           id,
		Name:         in.Name,
		MapURL:       in.MapURL,
		ImgURL:       in.ImgURL,
		Location:     in.Location,
		HasSockets:   in.HasSockets,
		HasToilet:    in.HasToilet,
		HasWifi:      in.HasWifi,
		CanTakeCalls: in.CanTakeCalls,
		Seats:        in.Seats,
		CoffeePrice:  FormatPrice(in.CoffeePrice),
	}
}

// FormatPrice renders a price the way it is stored: currency symbol plus
// exactly two decimals, rounding half to even.
func FormatPrice(price decimal.Decimal) string {
	return CurrencySymbol + price.StringFixedBank(2)
}

// ParsePrice reverses FormatPrice.
func ParsePrice(stored string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stored), CurrencySymbol))
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing stored price %q: %w", stored, err)
	}
	return price, nil
}
