package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form ListingForm
		want string
	}{
		{"valid", ListingForm{"Calculus I", "math141", "65.00", "Carol Davis"}, ""},
		{"blank title", ListingForm{"  ", "math141", "65", "Carol"}, MsgFillAllFields},
		{"missing price", ListingForm{"Calculus I", "math141", "", "Carol"}, MsgFillAllFields},
		{"non-numeric price", ListingForm{"Calculus I", "math141", "sixty", "Carol"}, MsgInvalidPrice},
		{"zero price", ListingForm{"Calculus I", "math141", "0", "Carol"}, MsgInvalidPrice},
		{"negative price", ListingForm{"Calculus I", "math141", "-1", "Carol"}, MsgInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			tt.form.Validate(v)
			if tt.want == "" {
				assert.True(t, v.Valid())
				return
			}
			assert.Equal(t, map[string]string{Key: tt.want}, v.Errors)
		})
	}
}

func TestListingFormNormalises(t *testing.T) {
	f := ListingForm{Title: " Calculus I ", CourseCode: " math141 ", Price: "65.00", Seller: " Carol Davis "}
	got := f.Listing()
	assert.Equal(t, data.Listing{Title: "Calculus I", CourseCode: "MATH141", Price: 65, Seller: "Carol Davis"}, got)
}

func TestListingFormSubmit(t *testing.T) {
	f := ListingForm{Title: "Calculus I", CourseCode: "math141", Price: "65", Seller: "Carol Davis"}
	var stored data.Listing
	add := func(_ context.Context, l data.Listing) (*data.Listing, error) {
		l.ID = 42
		stored = l
		return &l, nil
	}

	v := validator.New()
	listing, done, err := f.Submit(context.Background(), v, add, time.Millisecond)
	require.NoError(t, err)
	require.True(t, v.Valid())
	require.NotNil(t, listing)
	assert.Equal(t, int64(42), listing.ID)
	assert.Equal(t, "MATH141", stored.CourseCode)
	assert.Equal(t, ListingForm{}, f, "fields are cleared after submission")

	select {
	case <-done.Done():
	case <-time.After(time.Second):
		t.Fatal("completion was not signalled")
	}
}

func TestListingFormSubmitInvalid(t *testing.T) {
	f := ListingForm{Title: "Calculus I"}
	called := false
	add := func(_ context.Context, l data.Listing) (*data.Listing, error) {
		called = true
		return &l, nil
	}
	v := validator.New()
	listing, done, err := f.Submit(context.Background(), v, add, time.Millisecond)
	assert.NoError(t, err)
	assert.Nil(t, listing)
	assert.Nil(t, done)
	assert.False(t, called)
	assert.Equal(t, MsgFillAllFields, v.Errors[Key])
	assert.Equal(t, "Calculus I", f.Title, "fields are kept on failure")
}

func TestListingFormSubmitStoreError(t *testing.T) {
	f := ListingForm{Title: "Calculus I", CourseCode: "math141", Price: "65", Seller: "Carol"}
	boom := errors.New("boom")
	add := func(context.Context, data.Listing) (*data.Listing, error) { return nil, boom }
	_, _, err := f.Submit(context.Background(), validator.New(), add, time.Millisecond)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Calculus I", f.Title)
}

func TestRequestFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form RequestForm
		want string
	}{
		{"valid", RequestForm{"Calculus I", "Dan", 2}, ""},
		{"blank requester", RequestForm{"Calculus I", " ", 2}, MsgFillAllFields},
		{"urgency too low", RequestForm{"Calculus I", "Dan", 0}, MsgInvalidUrgency},
		{"urgency too high", RequestForm{"Calculus I", "Dan", 11}, MsgInvalidUrgency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			tt.form.Validate(v)
			if tt.want == "" {
				assert.True(t, v.Valid())
				return
			}
			assert.Equal(t, tt.want, v.Errors[Key])
		})
	}
}

func TestRequestFormSubmit(t *testing.T) {
	f := NewRequestForm()
	assert.Equal(t, data.DefaultUrgency, f.Urgency)
	assert.Equal(t, "Medium Priority", f.Priority().Label)

	f.Title, f.Requester, f.Urgency = " Calculus I ", " Dan ", 2
	add := func(_ context.Context, r data.Request) (*data.Request, error) {
		r.ID = 1
		return &r, nil
	}
	v := validator.New()
	request, done, err := f.Submit(context.Background(), v, add, time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, "Calculus I", request.Title)
	assert.Equal(t, "Dan", request.Requester)
	assert.Equal(t, "High Priority", request.Priority().Label)
	assert.Equal(t, NewRequestForm(), f)
	<-done.Done()
}
