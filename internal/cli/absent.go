package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkordes/rollcall/backend/internal/service"
)

// AbsentResult is the JSON output of the absent command.
type AbsentResult struct {
	Absent []string `json:"absent"`
}

func newAbsentCommand(rootOpts *RootOptions) *cobra.Command {
	var rosterPath, reportPath string
	cmd := &cobra.Command{
		Use:   "absent",
		Short: "List roster members missing from an attendance report",
		Long: `Compare an attendance report against a roster and print every roster
member who is not in the report, one per line, in roster order.

Matching is exact and case-sensitive. Report entries not on the roster are
ignored.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rosterPath == "" || reportPath == "" {
				return errors.New("--roster and --report are both required")
			}
			if rosterPath == "-" && reportPath == "-" {
				return errors.New("only one of --roster and --report may read stdin")
			}
			rawRoster, err := readRoster(cmd, rosterPath)
			if err != nil {
				return err
			}
			rawReport, err := readRoster(cmd, reportPath)
			if err != nil {
				return err
			}

			absent := service.Reconcile(service.ParseIdentifiers(rawRoster), service.ParseIdentifiers(rawReport))
			return emit(cmd, rootOpts, AbsentResult{Absent: absent}, func(w io.Writer) error {
				for _, id := range absent {
					if _, err := fmt.Fprintln(w, id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster file, or - for stdin")
	cmd.Flags().StringVar(&reportPath, "report", "", "attendance report file, or - for stdin")
	return cmd
}
