package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/forms"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/spf13/cobra"
)

func (a *app) newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "Browse and manage book listings",
	}
	cmd.AddCommand(
		a.newBooksListCmd(),
		a.newBooksAddCmd(),
		a.newBooksShowCmd(),
		a.newBooksSearchCmd(),
		a.newBooksDeleteCmd(),
		a.newBooksFavouriteCmd(true),
		a.newBooksFavouriteCmd(false),
		a.newBooksRequestCmd(),
	)
	return cmd
}

func (a *app) newBooksListCmd() *cobra.Command {
	var qs dto.QsListListings
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the catalog, filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max-price") {
				qs.MaxPrice = math.Inf(1)
			}
			entries, err := a.client.ListBooks(cmd.Context(), qs)
			if err != nil {
				return err
			}
			renderEntries(a.out, entries)
			return nil
		},
	}
	cmd.Flags().StringVarP(&qs.Search, "search", "s", "", "Match title, course code or seller")
	cmd.Flags().StringVar(&qs.Sort, "sort", "title", "Sort by title, price or course")
	cmd.Flags().Float64Var(&qs.MinPrice, "min-price", 0, "Lowest price to show")
	cmd.Flags().Float64Var(&qs.MaxPrice, "max-price", 0, "Highest price to show")
	cmd.Flags().StringVar(&qs.Course, "course", "", "Only show this exact course code")
	return cmd
}

func (a *app) newBooksAddCmd() *cobra.Command {
	var form forms.ListingForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "List a book for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			add := func(ctx context.Context, l data.Listing) (*data.Listing, error) {
				return a.client.AddBook(ctx, dto.CreateListingRequestBody{
					Title:      l.Title,
					CourseCode: l.CourseCode,
					Price:      dto.PriceInput(strconv.FormatFloat(l.Price, 'f', -1, 64)),
					Seller:     l.Seller,
				})
			}
			v := validator.New()
			listing, done, err := form.Submit(cmd.Context(), v, add, a.delay())
			if err != nil {
				return err
			}
			if !v.Valid() {
				return errors.New(v.Errors[forms.Key])
			}
			a.ok("%s %s", forms.MsgListingAdded, listing)
			<-done.Done()
			return a.showCatalog(cmd)
		},
	}
	cmd.Flags().StringVar(&form.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&form.CourseCode, "course", "", "Course code, e.g. CS134")
	cmd.Flags().StringVar(&form.Price, "price", "", "Asking price")
	cmd.Flags().StringVar(&form.Seller, "seller", "", "Your name")
	return cmd
}

func (a *app) showCatalog(cmd *cobra.Command) error {
	entries, err := a.client.ListBooks(cmd.Context(), dto.QsListListings{MaxPrice: math.Inf(1)})
	if err != nil {
		return err
	}
	a.header("Available books")
	renderEntries(a.out, entries)
	return nil
}

func (a *app) newBooksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			listing, err := a.client.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderListing(a.out, listing)
			return nil
		},
	}
}

func (a *app) newBooksSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search listings by title, course code or seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := a.client.SearchBooks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderListings(a.out, listings)
			return nil
		},
	}
}

func (a *app) newBooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteBook(cmd.Context(), id); err != nil {
				return err
			}
			a.ok("Deleted listing %d", id)
			return nil
		},
	}
}

func (a *app) newBooksFavouriteCmd(add bool) *cobra.Command {
	use, short := "favourite <id>", "Mark a listing as a favourite"
	if !add {
		use, short = "unfavourite <id>", "Clear a favourite mark"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if add {
				err = a.client.FavouriteBook(cmd.Context(), id)
			} else {
				err = a.client.UnfavouriteBook(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			a.ok("Updated favourites for listing %d", id)
			if a.v.GetString("session") == "" {
				a.warn("favourites last for this session only; set BOOKX_SESSION=%s to keep them", a.client.Session())
			}
			return nil
		},
	}
}

// newBooksRequestCmd files a request for the title of an existing listing.
func (a *app) newBooksRequestCmd() *cobra.Command {
	form := forms.NewRequestForm()
	cmd := &cobra.Command{
		Use:   "request <id>",
		Short: "Request the book of an existing listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			listing, err := a.client.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			form.Title = listing.Title
			return a.submitRequest(cmd, &form)
		},
	}
	cmd.Flags().StringVar(&form.Requester, "requester", "", "Your name")
	cmd.Flags().IntVar(&form.Urgency, "urgency", data.DefaultUrgency, "1 (most urgent) to 10")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
