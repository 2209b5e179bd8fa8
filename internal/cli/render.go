package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	bucketStyles = map[data.Bucket]lipgloss.Style{
		data.BucketHigh:   cellStyle.Foreground(lipgloss.Color("1")),
		data.BucketMedium: cellStyle.Foreground(lipgloss.Color("3")),
		data.BucketLow:    cellStyle.Foreground(lipgloss.Color("2")),
	}
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func renderEntries(w io.Writer, entries []catalog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}
	t := newTable("ID", "", "TITLE", "COURSE", "PRICE", "SELLER")
	for _, e := range entries {
		star := ""
		if e.Favourite {
			star = "★"
		}
		t.Row(strconv.FormatInt(e.ID, 10), star, e.Title, e.CourseCode, fmt.Sprintf("$%.2f", e.Price), e.Seller)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.String())
}

func renderListings(w io.Writer, listings []data.Listing) {
	entries := make([]catalog.Entry, len(listings))
	for i, l := range listings {
		entries[i] = catalog.Entry{Listing: l}
	}
	renderEntries(w, entries)
}

func renderRequests(w io.Writer, requests []data.Request) {
	if len(requests) == 0 {
		fmt.Fprintln(w, "No pending requests.")
		return
	}
	t := newTable("ID", "TITLE", "REQUESTER", "URGENCY", "PRIORITY")
	for _, r := range requests {
		t.Row(strconv.FormatInt(r.ID, 10), r.Title, r.Requester, strconv.Itoa(r.Urgency), r.Priority().Label)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 4 && row >= 0 && row < len(requests) {
			return bucketStyles[requests[row].Priority().Bucket]
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.String())
}

func renderListing(w io.Writer, l *data.Listing) {
	fmt.Fprintf(w, "%-8s %d\n", "id:", l.ID)
	fmt.Fprintf(w, "%-8s %s\n", "title:", l.Title)
	fmt.Fprintf(w, "%-8s %s\n", "course:", l.CourseCode)
	fmt.Fprintf(w, "%-8s $%.2f\n", "price:", l.Price)
	fmt.Fprintf(w, "%-8s %s\n", "seller:", l.Seller)
}
