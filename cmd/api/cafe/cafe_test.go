package cafe_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	t.Run("formats with the currency symbol and two decimals", func(t *testing.T) {
		is := is.New(t)

		is.Equal(cafe.FormatPrice(decimal.RequireFromString("3.5")), "£3.50")
		is.Equal(cafe.FormatPrice(decimal.RequireFromString("2.5")), "£2.50")
		is.Equal(cafe.FormatPrice(decimal.RequireFromString("0")), "£0.00")
		is.Equal(cafe.FormatPrice(decimal.RequireFromString("12.345")), "£12.34") // half to even
		is.Equal(cafe.FormatPrice(decimal.RequireFromString("12.355")), "£12.36")
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("parses a stored price back to a number", func(t *testing.T) {
		is := is.New(t)

		price, err := cafe.ParsePrice("£3.50")
		is.NoErr(err)
		is.True(price.Equal(decimal.RequireFromString("3.5")))
		is.Equal(price.String(), "3.5")
	})

	t.Run("round trips through FormatPrice", func(t *testing.T) {
		is := is.New(t)

		in := decimal.RequireFromString("7.25")
		price, err := cafe.ParsePrice(cafe.FormatPrice(in))
		is.NoErr(err)
		is.True(price.Equal(in))
	})

	t.Run("rejects a price that is not a number", func(t *testing.T) {
		is := is.New(t)

		_, err := cafe.ParsePrice("£abc")
		is.True(err != nil)
	})
}

func validForm() cafe.Form {
	return cafe.Form{
		Name:        "Science Gallery London",
		MapURL:      "https://g.page/scigallerylon",
		ImgURL:      "https://atlondonbridge.com/wp-content/uploads/2019/02/Pano_9758_9761-Edit-190918_LTS_Science_Gallery-Medium-Crop.jpg",
		Location:    "London Bridge",
		Seats:       "0-10",
		CoffeePrice: "2.5",
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.HasWifi = true

		in, errs := cafe.Validate(f)
		is.Equal(len(errs), 0)
		is.Equal(in.Name, f.Name)
		is.Equal(in.MapURL, f.MapURL)
		is.Equal(in.ImgURL, f.ImgURL)
		is.Equal(in.Location, f.Location)
		is.Equal(in.Seats, "0-10")
		is.True(in.HasWifi)
		is.True(!in.HasSockets)
		is.True(in.CoffeePrice.Equal(decimal.RequireFromString("2.5")))
	})

	t.Run("missing name is attached to the name field", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.Name = ""

		_, errs := cafe.Validate(f)
		is.Equal(len(errs), 1)
		is.Equal(errs["name"], "This field is required.")
	})

	t.Run("every required field is reported", func(t *testing.T) {
		is := is.New(t)

		_, errs := cafe.Validate(cafe.Form{})
		for _, field := range []string{"name", "map_url", "img_url", "location", "seats", "coffee_price"} {
			is.Equal(errs[field], "This field is required.")
		}
	})

	t.Run("malformed urls are rejected", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.MapURL = "not a url"
		f.ImgURL = "www.example.com/cafe.jpg"

		_, errs := cafe.Validate(f)
		is.Equal(errs["map_url"], "Invalid URL.")
		is.Equal(errs["img_url"], "Invalid URL.")
	})

	t.Run("seats must be one of the choices", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.Seats = "100"

		_, errs := cafe.Validate(f)
		is.Equal(errs["seats"], "Not a valid choice.")
	})

	t.Run("price must be a non negative number", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.CoffeePrice = "two pounds"
		_, errs := cafe.Validate(f)
		is.Equal(errs["coffee_price"], "Not a valid decimal value.")

		f.CoffeePrice = "-1"
		_, errs = cafe.Validate(f)
		is.Equal(errs["coffee_price"], "The price cannot be negative.")
	})

	t.Run("exponent notation is not a price", func(t *testing.T) {
		is := is.New(t)

		for _, price := range []string{"1e50000000", "1e40", "2.5E1", "1e-2"} {
			f := validForm()
			f.CoffeePrice = price
			_, errs := cafe.Validate(f)
			is.Equal(errs["coffee_price"], "Not a valid decimal value.") // price
		}
	})

	t.Run("prices beyond the stored width are rejected", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.CoffeePrice = "100000000"
		_, errs := cafe.Validate(f)
		is.Equal(errs["coffee_price"], "The price is too large.")

		f.CoffeePrice = "2." + strings.Repeat("5", cafe.PriceMaxDecimals+1)
		_, errs = cafe.Validate(f)
		is.Equal(errs["coffee_price"], "The price has too many decimal places.")
	})

	t.Run("the largest accepted price fits the stored column", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.CoffeePrice = "0000" + strings.Repeat("9", cafe.PriceMaxDigits) + "." + strings.Repeat("9", cafe.PriceMaxDecimals)
		in, errs := cafe.Validate(f)
		is.Equal(len(errs), 0)

		stored := cafe.FormatPrice(in.CoffeePrice)
		is.Equal(stored, "£100000000.00")
		is.True(len(stored) <= cafe.PriceMaxStored)
	})

	t.Run("plain decimals without a leading digit are accepted", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.CoffeePrice = ".5"
		in, errs := cafe.Validate(f)
		is.Equal(len(errs), 0)
		is.Equal(cafe.FormatPrice(in.CoffeePrice), "£0.50")
	})

	t.Run("location longer than 100 characters is rejected", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.Location = strings.Repeat("a", 101)
		_, errs := cafe.Validate(f)
		is.True(errs["location"] != "")

		f.Location = strings.Repeat("a", 100)
		_, errs = cafe.Validate(f)
		is.Equal(len(errs), 0)
	})

	t.Run("same form always gives the same outcome", func(t *testing.T) {
		is := is.New(t)

		f := validForm()
		f.MapURL = "nope"
		_, first := cafe.Validate(f)
		_, second := cafe.Validate(f)
		is.Equal(first, second)
	})
}

func TestFormFromValues(t *testing.T) {
	t.Run("reads checkboxes and trims text", func(t *testing.T) {
		is := is.New(t)

		values := url.Values{
			"name":           {"  Mare Street Market "},
			"has_sockets":    {"y"},
			"has_toilet":     {"false"},
			"can_take_calls": {"on"},
			"coffee_price":   {"2.80"},
		}

		f := cafe.FormFromValues(values)
		is.Equal(f.Name, "Mare Street Market")
		is.True(f.HasSockets)
		is.True(!f.HasToilet)
		is.True(!f.HasWifi)
		is.True(f.CanTakeCalls)
		is.Equal(f.CoffeePrice, "2.80")
	})
}

func TestFormFromCafe(t *testing.T) {
	t.Run("converts the stored price to a plain number", func(t *testing.T) {
		is := is.New(t)

		f, err := cafe.FormFromCafe(cafe.Cafe{ID: 1, Name: "Ace", Seats: "50+", CoffeePrice: "£3.50", HasToilet: true})
		is.NoErr(err)
		is.Equal(f.CoffeePrice, "3.5")
		is.Equal(f.Seats, "50+")
		is.True(f.HasToilet)
	})

	t.Run("a corrupt stored price is reported", func(t *testing.T) {
		is := is.New(t)

		_, err := cafe.FormFromCafe(cafe.Cafe{CoffeePrice: "free"})
		is.True(errors.Is(err, cafe.ErrResponseStoredPriceInvalid))
	})

	t.Run("editing with the stored values validates back to the same row", func(t *testing.T) {
		is := is.New(t)

		stored := cafe.Cafe{
			ID:          4,
			Name:        "Social - Wahaca",
			MapURL:      "https://g.page/wahaca-shoreditch",
			ImgURL:      "https://example.com/wahaca.jpg",
			Location:    "Shoreditch",
			HasSockets:  true,
			Seats:       "21-30",
			CoffeePrice: "£2.40",
		}

		f, err := cafe.FormFromCafe(stored)
		is.NoErr(err)
		in, errs := cafe.Validate(f)
		is.Equal(len(errs), 0)
		is.Equal(cafe.FormatPrice(in.CoffeePrice), stored.CoffeePrice)
	})
}
