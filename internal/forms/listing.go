package forms

import (
	"context"
	"strings"
	"time"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/internal/validator"
)

// ListingForm holds the raw text of a new listing.
type ListingForm struct {
	Title      string
	CourseCode string
	Price      string
	Seller     string
}

// Validate records at most one form-level message in v.
func (f ListingForm) Validate(v *validator.Validator) {
	if !validator.NotBlank(f.Title, f.CourseCode, f.Price, f.Seller) {
		v.AddError(Key, MsgFillAllFields)
		return
	}
	_, ok := validator.PositiveAmount(f.Price)
	v.Check(ok, Key, MsgInvalidPrice)
}

// Listing returns the trimmed, normalised listing. Call Validate first.
func (f ListingForm) Listing() data.Listing {
	price, _ := validator.PositiveAmount(f.Price)
	return data.Listing{
		Title:      strings.TrimSpace(f.Title),
		CourseCode: strings.ToUpper(strings.TrimSpace(f.CourseCode)),
		Price:      price,
		Seller:     strings.TrimSpace(f.Seller),
	}
}

// Reset clears every field.
func (f *ListingForm) Reset() {
	*f = ListingForm{}
}

// ListingAdder stores a validated listing and returns the stored record.
type ListingAdder func(ctx context.Context, listing data.Listing) (*data.Listing, error)

// Submit validates the form, hands the listing to add, clears the form and
// schedules completion after delay. When validation fails v holds the message
// and every result is nil.
func (f *ListingForm) Submit(ctx context.Context, v *validator.Validator, add ListingAdder, delay time.Duration) (*data.Listing, *Completion, error) {
	if f.Validate(v); !v.Valid() {
		return nil, nil, nil
	}
	listing, err := add(ctx, f.Listing())
	if err != nil {
		return nil, nil, err
	}
	f.Reset()
	return listing, afterSuccess(delay), nil
}
