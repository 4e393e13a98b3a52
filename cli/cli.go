// Package cli renders the command-line surface of the tray application:
// help, version and fatal diagnostics.
package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/trayapp/common"
)

// Styles matching light and dark terminals.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"})
	styleVersion = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})
)

// BuildInfo describes the running binary. Fields are injected via ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	Commit    string
}

// Option is one documented command-line flag.
type Option struct {
	Flag        string
	Description string
}

// Options lists the flags understood by the binary, in help order.
var Options = []Option{
	{"--hidden", "Start in the tray without opening the window"},
	{"--config PATH", "Read configuration from PATH"},
	{"--verbose", "Enable verbose logging"},
	{"--version", "Show version and exit"},
	{"--help", "Show this help message"},
}

// PrintHelp prints usage help.
func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "%s - system tray application\n\n", styleBrand.Render(common.AppName))
	fmt.Fprintln(w, styleHeading.Render("Usage:"))
	fmt.Fprintln(w, "  trayapp [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("Options:"))
	for _, o := range Options {
		fmt.Fprintf(w, "  %s %s\n", styleValue.Render(fmt.Sprintf("%-15s", o.Flag)), styleLabel.Render(o.Description))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("Notes:"))
	fmt.Fprintln(w, "  - Closing the window keeps the application in the tray")
	fmt.Fprintln(w, "  - Use Close in the tray menu to quit")
	fmt.Fprintln(w, "  - Starting it again shows the running instance's window")
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer, info BuildInfo) {
	fmt.Fprintf(w, "  %s %s\n", styleBrand.Render(common.AppName), styleVersion.Render(info.Version))
	if info.BuildTime != "" && info.BuildTime != "unknown" {
		fmt.Fprintf(w, "    %s   %s\n", styleLabel.Render("Built"), styleValue.Render(info.BuildTime))
	}
	if info.Commit != "" && info.Commit != "unknown" {
		fmt.Fprintf(w, "    %s  %s\n", styleLabel.Render("Commit"), styleValue.Render(info.Commit))
	}
	fmt.Fprintf(w, "    %s %s\n", styleLabel.Render("OS/Arch"), styleValue.Render(runtime.GOOS+"/"+runtime.GOARCH))
}

// PrintError prints a fatal diagnostic.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", styleError.Render("Error:"), err)
}
