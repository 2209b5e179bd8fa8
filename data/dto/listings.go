package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// PriceInput holds a price as typed by the user. It accepts either a JSON
// number or a JSON string so that form text can be validated verbatim.
type PriceInput string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.New("price must be a number or a string")
		}
		*p = PriceInput(n.String())
	}
	return nil
}

// CreateListingRequestBody defines the request body for CreateListing service.
type CreateListingRequestBody struct {
	Title      string     `json:"title"`
	CourseCode string     `json:"courseCode"`
	Price      PriceInput `json:"price"`
	Seller     string     `json:"seller"`
}

// QsListListings defines the query strings used for listing books.
type QsListListings struct {
	Search   string
	Sort     string
	MinPrice float64
	MaxPrice float64
	Course   string
}
