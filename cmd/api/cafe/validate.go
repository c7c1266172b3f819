package cafe

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// Form holds the raw values of a submitted (or pre-filled) cafe form. The
// json tags are the form field names and key the validation errors.
type Form struct {
	Name         string `json:"name"`
	MapURL       string `json:"map_url"`
	ImgURL       string `json:"img_url"`
	Location     string `json:"location"`
	HasSockets   bool   `json:"has_sockets"`
	HasToilet    bool   `json:"has_toilet"`
	HasWifi      bool   `json:"has_wifi"`
	CanTakeCalls bool   `json:"can_take_calls"`
	Seats        string `json:"seats"`
	CoffeePrice  string `json:"coffee_price"`
}

// FieldErrors maps a form field name to its error message.
type FieldErrors map[string]string

const msgRequired = "This field is required."

var schemeRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

var errPriceNotANumber = validation.NewError("validation_price_number", "Not a valid decimal value.")
var errPriceNegative = validation.NewError("validation_price_negative", "The price cannot be negative.")
var errPriceTooLarge = validation.NewError("validation_price_too_large", "The price is too large.")
var errPriceTooPrecise = validation.NewError("validation_price_too_precise", "The price has too many decimal places.")

// Plain decimal notation only, exponents are not accepted.
var priceRegexp = regexp.MustCompile(`^-?([0-9]*)(?:\.([0-9]*))?$`)

/* Reads the cafe fields out of a parsed form body. */
func FormFromValues(values url.Values) Form {
	return Form{
		Name:         strings.TrimSpace(values.Get("name")),
		MapURL:       strings.TrimSpace(values.Get("map_url")),
		ImgURL:       strings.TrimSpace(values.Get("img_url")),
		Location:     strings.TrimSpace(values.Get("location")),
		HasSockets:   checkbox(values.Get("has_sockets")),
		HasToilet:    checkbox(values.Get("has_toilet")),
		HasWifi:      checkbox(values.Get("has_wifi")),
		CanTakeCalls: checkbox(values.Get("can_take_calls")),
		Seats:        strings.TrimSpace(values.Get("seats")),
		CoffeePrice:  strings.TrimSpace(values.Get("coffee_price")),
	}
}

/* Pre-populates a form from a stored cafe, turning the stored price back into a plain number. */
func FormFromCafe(c Cafe) (Form, error) {
	price, err := ParsePrice(c.CoffeePrice)
	if err != nil {
		return Form{}, errors.Join(ErrResponseStoredPriceInvalid, err)
	}
	return Form{
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		HasSockets:   c.HasSockets,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		CanTakeCalls: c.CanTakeCalls,
		Seats:        c.Seats,
		CoffeePrice:  price.String(),
	}, nil
}

// checkbox follows the HTML convention: any submitted value but "false" means checked.
func checkbox(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "false")
}

// Validate checks a submitted form. It returns the typed input when every
// field is valid, otherwise a non-empty set of messages keyed by field name.
func Validate(f Form) (CafeInput, FieldErrors) {
	seats := make([]interface{}, len(SeatChoices))
	for i, s := range SeatChoices {
		seats[i] = s
	}

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error(msgRequired),
		),
		validation.Field(&f.MapURL,
			validation.Required.Error(msgRequired),
			is.URL.Error("Invalid URL."),
			validation.Match(schemeRegexp).Error("Invalid URL."),
		),
		validation.Field(&f.ImgURL,
			validation.Required.Error(msgRequired),
			is.URL.Error("Invalid URL."),
			validation.Match(schemeRegexp).Error("Invalid URL."),
		),
		validation.Field(&f.Location,
			validation.Required.Error(msgRequired),
			validation.RuneLength(1, LocationMaxLength).Error("Location must be at most 100 characters long."),
		),
		validation.Field(&f.Seats,
			validation.Required.Error(msgRequired),
			validation.In(seats...).Error("Not a valid choice."),
		),
		validation.Field(&f.CoffeePrice,
			validation.Required.Error(msgRequired),
			validation.By(nonNegativeDecimal),
		),
	)
	if err != nil {
		return CafeInput{}, toFieldErrors(err)
	}

	price, _ := decimal.NewFromString(f.CoffeePrice)
	return CafeInput{
		Name:         f.Name,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		Location:     f.Location,
		HasSockets:   f.HasSockets,
		HasToilet:    f.HasToilet,
		HasWifi:      f.HasWifi,
		CanTakeCalls: f.CanTakeCalls,
		Seats:        f.Seats,
		CoffeePrice:  price,
	}, nil
}

/* Accepts a plain, non negative decimal of at most PriceMaxDigits integer digits and PriceMaxDecimals decimals. */
func nonNegativeDecimal(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	m := priceRegexp.FindStringSubmatch(s)
	if m == nil || m[1]+m[2] == "" {
		return errPriceNotANumber
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return errPriceNotANumber
	}
	if price.IsNegative() {
		return errPriceNegative
	}
	if len(strings.TrimLeft(m[1], "0")) > PriceMaxDigits {
		return errPriceTooLarge
	}
	if len(m[2]) > PriceMaxDecimals {
		return errPriceTooPrecise
	}
	return nil
}

func toFieldErrors(err error) FieldErrors {
	fieldErrs := FieldErrors{}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		fieldErrs[""] = err.Error()
		return fieldErrs
	}
	for field, e := range errs {
		fieldErrs[field] = e.Error()
	}
	return fieldErrs
}
