package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// headerBoxStyle for the watch banner
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// FormatSaved reports a table of contents written to path.
func FormatSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n",
		successStyle.Render("✅ Table of contents saved to file:"),
		path,
	)
}

// FormatWriteFailed reports a table of contents that could not be written.
func FormatWriteFailed(w io.Writer, path string, cause error) {
	fmt.Fprintf(w, "%s %s: %v\n",
		errorStyle.Render("❌ Could not write file"),
		path, cause,
	)
}

// FormatSourceMissing reports a missing input document, using the error's
// message as-is.
func FormatSourceMissing(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render(err.Error()))
}

// FormatError reports any other failure.
func FormatError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("❌ "+err.Error()))
}

// FormatWatching renders the watch mode banner
func FormatWatching(w io.Writer, input, output string) {
	content := fmt.Sprintf("%s\n%s %s\n%s %s",
		titleStyle.Render("Watching for changes"),
		dimStyle.Render("Input:"), input,
		dimStyle.Render("Output:"), output,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}
