package data

import (
	"fmt"
	"time"
)

// Listing defines a book offered for sale by a seller.
type Listing struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	CourseCode string    `json:"courseCode"`
	Price      float64   `json:"price"`
	Seller     string    `json:"seller"`
	CreatedAt  time.Time `json:"createdAt"`
}

// String renders a listing the way match logs print it,
// e.g. "Calculus I ($65.00) - Course: MATH141, Seller: Carol Davis".
func (l Listing) String() string {
	return fmt.Sprintf("%s ($%.2f) - Course: %s, Seller: %s", l.Title, l.Price, l.CourseCode, l.Seller)
}
