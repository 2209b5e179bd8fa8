package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/forms"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/spf13/cobra"
)

func (a *app) newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requests",
		Aliases: []string{"request"},
		Short:   "Manage book requests",
	}
	cmd.AddCommand(
		a.newRequestsListCmd(),
		a.newRequestsAddCmd(),
		a.newRequestsRemoveCmd(),
		a.newRequestsProcessCmd(),
	)
	return cmd
}

func (a *app) newRequestsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show pending requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requests, err := a.client.ListRequests(cmd.Context())
			if err != nil {
				return err
			}
			renderRequests(a.out, requests)
			return nil
		},
	}
}

func (a *app) newRequestsAddCmd() *cobra.Command {
	form := forms.NewRequestForm()
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Request a book you need",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.submitRequest(cmd, &form)
		},
	}
	cmd.Flags().StringVar(&form.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&form.Requester, "requester", "", "Your name")
	cmd.Flags().IntVar(&form.Urgency, "urgency", data.DefaultUrgency, "1 (most urgent) to 10")
	return cmd
}

func (a *app) submitRequest(cmd *cobra.Command, form *forms.RequestForm) error {
	priority := form.Priority()
	add := func(ctx context.Context, r data.Request) (*data.Request, error) {
		urgency := r.Urgency
		return a.client.AddRequest(ctx, dto.CreateRequestRequestBody{
			Title:     r.Title,
			Requester: r.Requester,
			Urgency:   &urgency,
		})
	}
	v := validator.New()
	request, done, err := form.Submit(cmd.Context(), v, add, a.delay())
	if err != nil {
		return err
	}
	if !v.Valid() {
		return errors.New(v.Errors[forms.Key])
	}
	a.ok("%s %s [%s]", forms.MsgRequestSubmitted, request, priority.Label)
	<-done.Done()
	return a.showCatalog(cmd)
}

func (a *app) newRequestsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a pending request",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteRequest(cmd.Context(), id); err != nil {
				return err
			}
			a.ok("Removed request %d", id)
			return nil
		},
	}
}

func (a *app) newRequestsProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Match pending requests against listings, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := a.client.ProcessRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				a.warn("No pending requests")
				return nil
			}
			for _, line := range results {
				if strings.HasPrefix(line, data.MatchedPrefix) {
					a.ok("%s", line)
					continue
				}
				a.warn("%s", line)
			}
			return nil
		},
	}
}
