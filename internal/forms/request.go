package forms

import (
	"context"
	"strings"
	"time"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/internal/validator"
)

// RequestForm holds the raw input of a new book request.
type RequestForm struct {
	Title     string
	Requester string
	Urgency   int
}

// NewRequestForm returns a form with the default urgency selected.
func NewRequestForm() RequestForm {
	return RequestForm{Urgency: data.DefaultUrgency}
}

// Validate records at most one form-level message in v.
func (f RequestForm) Validate(v *validator.Validator) {
	if !validator.NotBlank(f.Title, f.Requester) {
		v.AddError(Key, MsgFillAllFields)
		return
	}
	v.Check(validator.Between(f.Urgency, data.MinUrgency, data.MaxUrgency), Key, MsgInvalidUrgency)
}

// Request returns the trimmed request. Call Validate first.
func (f RequestForm) Request() data.Request {
	return data.Request{
		Title:     strings.TrimSpace(f.Title),
		Requester: strings.TrimSpace(f.Requester),
		Urgency:   f.Urgency,
	}
}

// Priority is the label and bucket for the currently selected urgency.
func (f RequestForm) Priority() data.Priority {
	return data.PriorityFor(f.Urgency)
}

// Reset clears the text fields and restores the default urgency.
func (f *RequestForm) Reset() {
	*f = NewRequestForm()
}

// RequestAdder stores a validated request and returns the stored record.
type RequestAdder func(ctx context.Context, request data.Request) (*data.Request, error)

// Submit mirrors ListingForm.Submit for requests.
func (f *RequestForm) Submit(ctx context.Context, v *validator.Validator, add RequestAdder, delay time.Duration) (*data.Request, *Completion, error) {
	if f.Validate(v); !v.Valid() {
		return nil, nil, nil
	}
	request, err := add(ctx, f.Request())
	if err != nil {
		return nil, nil, err
	}
	f.Reset()
	return request, afterSuccess(delay), nil
}
