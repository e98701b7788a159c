package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/render"
	"github.com/pkordes/rollcall/backend/internal/repo"
	"github.com/pkordes/rollcall/backend/internal/service"
)

type generateOptions struct {
	roster string
	days   int
	out    string
}

func (g *generateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&g.roster, "roster", "r", "", "roster file, or - for stdin")
	cmd.Flags().IntVarP(&g.days, "days", "d", domain.MaxDays,
		fmt.Sprintf("number of days on the sheet (%d-%d)", domain.MinDays, domain.MaxDays))
	cmd.Flags().StringVarP(&g.out, "out", "o", ".", "directory to write the sheet into")
}

// GenerateResult is the JSON output of a successful generation.
type GenerateResult struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Students int    `json:"students"`
	Days     int    `json:"days"`
	Pages    int    `json:"pages"`
	Size     int64  `json:"size"`
}

func newGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a sign-in sheet PDF from a roster file",
		Long: `Render a sign-in sheet for every identifier in the roster file and
store it in the output directory as attendance_template-<timestamp>.pdf.

Header rows repeat on every page when the roster overflows one page.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootOpts, gen)
		},
	}
	gen.bind(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *RootOptions, gen *generateOptions) error {
	if gen.roster == "" {
		return errors.New("--roster is required")
	}
	// Reject a bad day count before reading anything.
	if err := domain.ValidateDays(gen.days); err != nil {
		return err
	}

	raw, err := readRoster(cmd, gen.roster)
	if err != nil {
		return err
	}
	roster := service.ParseIdentifiers(raw)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	doc, err := service.Layout(roster, gen.days)
	if err != nil {
		return err
	}
	data, err := render.NewPDFRenderer(now).Render(doc)
	if err != nil {
		return err
	}

	store, err := repo.NewArtifactRepo(gen.out, now)
	if err != nil {
		return err
	}
	art, err := store.Create(cmd.Context(), data)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("a sheet named for this second already exists in %s; retry in a moment", gen.out)
		}
		return err
	}

	res := GenerateResult{
		Name:     art.Name,
		Path:     filepath.Join(gen.out, art.Name),
		Students: len(roster),
		Days:     gen.days,
		Pages:    render.PageCount(len(roster)),
		Size:     art.Size,
	}
	return emit(cmd, opts, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Path)
		return err
	})
}
