package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/backup/pkg/output/styles"
	"github.com/arthur-debert/backup/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Line formats
const (
	MsgCleanStart  = "cleaning files in %s"
	MsgRemove      = "removing: %s"
	MsgMirrorStart = "start copy files: %d"
	MsgSourceRoot  = "path: %s"
	MsgCreateDir   = "create directory: %s"
	MsgCopy        = "copy %s to %s"
	MsgSkip        = "skip %s (excluded extension)"
	MsgDryRun      = "[dry-run] "
)

// Printer writes one line per reported event
type Printer struct {
	w         io.Writer
	showSkips bool
}

// NewPrinter creates a printer writing to w. Skipped files are only
// listed when showSkips is set.
func NewPrinter(w io.Writer, showSkips bool) *Printer {
	return &Printer{w: w, showSkips: showSkips}
}

// ConfigureColor disables styling when f is not a terminal or NO_COLOR is set
func ConfigureColor(f *os.File) {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(f.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Report implements types.Reporter
func (p *Printer) Report(e types.Event) {
	var line string
	switch e.Kind {
	case types.EventCleanStart:
		line = styles.GetStyle("Header").Render(fmt.Sprintf(MsgCleanStart, e.Destination))
	case types.EventRemove:
		line = styles.GetStyle("Removal").Render(fmt.Sprintf(MsgRemove, e.Destination))
	case types.EventMirrorStart:
		line = styles.GetStyle("Header").Render(fmt.Sprintf(MsgMirrorStart, e.Count))
	case types.EventSourceRoot:
		line = fmt.Sprintf(MsgSourceRoot, styles.GetStyle("FilePath").Render(e.Source))
	case types.EventCreateDir:
		line = fmt.Sprintf(MsgCreateDir, e.Destination)
	case types.EventCopy:
		line = styles.GetStyle("Success").Render(fmt.Sprintf(MsgCopy, e.Source, e.Destination))
	case types.EventSkip:
		if !p.showSkips {
			return
		}
		line = styles.GetStyle("Muted").Render(fmt.Sprintf(MsgSkip, e.Source))
	default:
		return
	}

	if e.DryRun {
		line = styles.GetStyle("DryRunBanner").Render(MsgDryRun) + line
	}
	_, _ = fmt.Fprintln(p.w, line)
}

// Summary prints the closing line of a run
func (p *Printer) Summary(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(p.w, styles.GetStyle("Header").Render(fmt.Sprintf(format, args...)))
}

// Error prints err the way a failed run ends
func Error(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
}
