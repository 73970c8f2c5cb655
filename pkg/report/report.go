// Package report renders the per-item outcome of install, uninstall and
// status runs for the terminal. Every skip, restore and removal is shown
// with the paths involved, so a user can audit exactly what happened.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/hyprkit/hyprkit/pkg/provision"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/hyprkit/hyprkit/pkg/wiring"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
)

// Reporter renders run results. Styling is dropped when stdout is not a
// terminal or the terminal reports no color support.
type Reporter struct {
	styled bool
}

// New creates a Reporter with terminal detection.
func New() *Reporter {
	styled := isatty.IsTerminal(os.Stdout.Fd()) &&
		termenv.DefaultOutput().Profile != termenv.Ascii
	return &Reporter{styled: styled}
}

// NewPlain creates a Reporter that never styles, for tests and pipes.
func NewPlain() *Reporter {
	return &Reporter{styled: false}
}

func (r *Reporter) title(s string) string {
	if !r.styled {
		return s
	}
	return titleStyle.Render(s)
}

func (r *Reporter) muted(s string) string {
	if !r.styled {
		return s
	}
	return mutedStyle.Render(s)
}

func (r *Reporter) ok(s string) string {
	if !r.styled {
		return s
	}
	return okStyle.Render(s)
}

func (r *Reporter) warn(s string) string {
	if !r.styled {
		return s
	}
	return warnStyle.Render(s)
}

// RenderInstall renders one install run.
func (r *Reporter) RenderInstall(result *types.InstallResult) string {
	var b strings.Builder
	b.WriteString(r.title("Install") + "\n\n")

	for _, lr := range result.Links {
		name := fmt.Sprintf("%-16s", lr.Path.Name)
		switch lr.State {
		case types.LinkCreated:
			fmt.Fprintf(&b, "  %s %s %s\n", r.ok("linked "), name, r.muted(lr.Path.Destination))
		case types.LinkReplaced:
			fmt.Fprintf(&b, "  %s %s %s %s\n", r.ok("linked "), name, r.muted(lr.Path.Destination),
				r.warn("(previous content backed up)"))
		case types.LinkSatisfied:
			fmt.Fprintf(&b, "  %s %s %s\n", r.muted("kept   "), name, r.muted(lr.Path.Destination))
		case types.LinkSkipped:
			fmt.Fprintf(&b, "  %s %s %s\n", r.warn("skipped"), name, r.muted("optional source absent"))
		}
	}

	if len(result.Blocks) > 0 {
		fmt.Fprintf(&b, "\n  %s %s\n", r.ok("wired  "), strings.Join(result.Blocks, ", "))
	}
	if result.BackupRoot != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", r.muted("backup "), result.BackupRoot)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", r.warn("warning"), warning)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderUninstall renders one uninstall run.
func (r *Reporter) RenderUninstall(result *types.UninstallResult) string {
	var b strings.Builder
	b.WriteString(r.title("Uninstall") + "\n\n")

	if len(result.Blocks) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", r.ok("cleaned"), strings.Join(result.Blocks, ", "))
	}

	for _, removal := range result.Removals {
		switch removal.State {
		case types.Removed:
			fmt.Fprintf(&b, "  %s %s\n", r.ok("removed"), r.muted(removal.Destination))
		case types.NotManaged:
			fmt.Fprintf(&b, "  %s %s %s\n", r.warn("skipped"), r.muted(removal.Destination),
				r.warn("(not managed by hyprkit)"))
		case types.RemoveAbsent:
			fmt.Fprintf(&b, "  %s %s\n", r.muted("absent "), r.muted(removal.Destination))
		}
	}

	for _, restore := range result.Restores {
		switch restore.State {
		case types.Restored:
			fmt.Fprintf(&b, "  %s %s %s\n", r.ok("restored"), r.muted(restore.Destination),
				r.muted("from "+restore.From))
		case types.RestoreSkipped:
			if restore.Reason != "no backup entry" && restore.Reason != "no backup marker" {
				fmt.Fprintf(&b, "  %s %s %s\n", r.warn("skipped "), r.muted(restore.Destination),
					r.muted("("+restore.Reason+")"))
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStatus renders the read-only snapshot.
func (r *Reporter) RenderStatus(status *provision.Status) string {
	var b strings.Builder
	b.WriteString(r.title("Managed paths") + "\n\n")

	for _, entry := range status.Entries {
		name := fmt.Sprintf("%-16s", entry.Path.Name)
		state := fmt.Sprintf("%-12s", entry.State)
		switch entry.State {
		case provision.StateLinked:
			state = r.ok(state)
		case provision.StateAbsent:
			state = r.muted(state)
		default:
			state = r.warn(state)
		}
		fmt.Fprintf(&b, "  %s %s %s\n", state, name, r.muted(entry.Destination))
	}

	b.WriteString("\n" + r.title("Wiring blocks") + "\n\n")
	for _, name := range wiring.Names() {
		if status.Blocks[name] {
			fmt.Fprintf(&b, "  %s %s\n", r.ok("present"), name)
		} else {
			fmt.Fprintf(&b, "  %s %s\n", r.muted("absent "), name)
		}
	}

	if status.LatestBackup != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", r.muted("backup "), status.LatestBackup)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders a fatal error with pterm's error prefix.
func (r *Reporter) RenderError(err error) string {
	if !r.styled {
		return "error: " + err.Error()
	}
	return pterm.Error.Sprint(err.Error())
}
