// Package cli implements bookxctl, the command-line client for the
// bookXchange API.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emzola/bookxchange/clients"
	"github.com/emzola/bookxchange/internal/forms"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	client *clients.Client
	out    io.Writer
	errOut io.Writer
	// successDelay is how long a submitted form waits before showing the catalog.
	successDelay time.Duration
}

// NewRootCmd builds the bookxctl command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut, successDelay: forms.SuccessDelay}

	cmd := &cobra.Command{
		Use:   "bookxctl",
		Short: "Exchange and request textbooks from the command line",
		Long: `bookxctl talks to a bookXchange server.

List books for sale, add your own, request books you need and match
pending requests against the catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.v.GetBool("no-color") || !isTTY(out) {
				color.NoColor = true
			}
			a.client = clients.New(
				a.v.GetString("api-url"),
				clients.WithSession(a.v.GetString("session")),
				clients.WithHTTPClient(clients.NewHTTPClient(a.v.GetDuration("timeout"))),
			)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.String("api-url", clients.DefaultBaseURL, "Base URL of the bookXchange API (env BOOKX_API_URL)")
	flags.String("session", "", "Session id scoping favourites (env BOOKX_SESSION)")
	flags.Duration("timeout", 15*time.Second, "HTTP request timeout")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("no-wait", false, "Skip the pause after a successful submission")

	a.v.SetEnvPrefix("BOOKX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(
		a.newBooksCmd(),
		a.newRequestsCmd(),
		a.newCoursesCmd(),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), clients.Describe(err))
		os.Exit(1)
	}
}

// delay returns the pause after a successful submission.
func (a *app) delay() time.Duration {
	if a.v.GetBool("no-wait") {
		return 0
	}
	return a.successDelay
}

// ok prints a green success line.
func (a *app) ok(format string, args ...interface{}) {
	fmt.Fprintln(a.out, color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// warn prints a yellow warning line.
func (a *app) warn(format string, args ...interface{}) {
	fmt.Fprintln(a.errOut, color.YellowString("!"), fmt.Sprintf(format, args...))
}

// header prints a cyan section heading.
func (a *app) header(format string, args ...interface{}) {
	fmt.Fprintln(a.out, color.CyanString(fmt.Sprintf(format, args...)))
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
