package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var noteExportCmd = LeafCommand{
	Use:       "export",
	Short:     "Export notes to a PDF file",
	Args:      cobra.NoArgs,
	BoolFlags: []BoolFlag{allFlag},
	StrFlags: append(dateFlags(), StringFlag{
		Name: "output", Shorthand: "o", Usage: "PDF file to write (default: notities-<date>.pdf)",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		outputFlag, _ := cmd.Flags().GetString("output")
		viewAll, _ := cmd.Flags().GetBool("all")
		return runNoteExport(cmd, homeDir, loc, dateFlag, outputFlag, viewAll, clockwork.NewRealClock())
	},
}.Build()

var (
	pdfHeaderColor = props.Color{Red: 30, Green: 64, Blue: 175}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// notesExport is the data rendered into the notes PDF.
type notesExport struct {
	Title    string
	Sessions []exportSession
	Total    int
}

type exportSession struct {
	Label   string
	Span    string
	Minutes int
	Lines   []string
}

func buildNotesExport(title string, sessions []session.Session, loc *time.Location, now time.Time) notesExport {
	data := notesExport{Title: title}
	for _, s := range sessions {
		es := exportSession{
			Label:   calendar.FormatDateNL(s.Start.In(loc)),
			Span:    formatSpan(s, loc),
			Minutes: s.Minutes(now),
		}
		if s.Notes != "" {
			es.Lines = strings.Split(s.Notes, "\n")
		}
		data.Total += es.Minutes
		data.Sessions = append(data.Sessions, es)
	}
	return data
}

func runNoteExport(
	cmd *cobra.Command,
	homeDir string,
	loc *time.Location,
	dateFlag, outputFlag string,
	viewAll bool,
	clock clockwork.Clock,
) error {
	nc, err := loadNoteContext(homeDir, loc, dateFlag, clock)
	if err != nil {
		return err
	}

	sessions := nc.visible(viewAll)
	if len(sessions) == 0 {
		return errors.New(messages.NoSessionsForDate)
	}

	output := outputFlag
	if output == "" {
		if viewAll {
			output = "notities.pdf"
		} else {
			output = fmt.Sprintf("notities-%s.pdf", calendar.DayKeyOf(nc.date, loc))
		}
	}

	data := buildNotesExport(nc.title(viewAll), sessions, loc, clock.Now())
	if err := renderNotesPDF(data, output); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s session(s) to %s\n",
		Primary(fmt.Sprintf("%d", len(data.Sessions))),
		Primary(output),
	)
	return nil
}

// renderNotesPDF generates a PDF of the notes and saves it to outputPath.
func renderNotesPDF(data notesExport, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, data.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, s := range data.Sessions {
		m.AddRow(8,
			text.NewCol(6, s.Label, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, s.Span, props.Text{
				Size:  10,
				Color: &pdfMutedColor,
			}),
			text.NewCol(3, session.FormatMinutes(s.Minutes), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
			}),
		)

		if len(s.Lines) == 0 {
			m.AddRow(6, text.NewCol(12, "  "+messages.NoNotes, props.Text{
				Size:  9,
				Style: fontstyle.Italic,
				Color: &pdfMutedColor,
			}))
		}
		for _, l := range s.Lines {
			m.AddRow(6, text.NewCol(12, "  "+l, props.Text{Size: 9}))
		}

		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Totaal", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, session.FormatMinutes(data.Total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
