package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Forge metals and embers
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Ember  = lipgloss.Color("#FF7043") // Hot ember
	Flame  = lipgloss.Color("#FFB74D") // Flame orange
	Steel  = lipgloss.Color("#90A4AE") // Cold steel
	Iron   = lipgloss.Color("#546E7A") // Dark iron
	Brass  = lipgloss.Color("#E6C35C") // Polished brass
	Copper = lipgloss.Color("#DC7633") // Copper accent

	Green = lipgloss.Color("#58D68D")
	Blue  = lipgloss.Color("#5DADE2")
	Pink  = lipgloss.Color("#FF6B9D")
	White = lipgloss.Color("#FDFEFE")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for page headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Flame)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Brass)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	Info = lipgloss.NewStyle().
		Foreground(Blue)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Steel)

	// Highlight for paths and names
	Highlight = lipgloss.NewStyle().
			Foreground(Brass).
			Bold(true)

	// Code is used for raw tool output
	Code = lipgloss.NewStyle().
		Foreground(White)
)

// Logo returns the banner shown in the root command's long help
func Logo() string {
	if !IsTTY {
		return "\n  FORGEKIT - AI Engineering Skills Toolkit\n"
	}

	lines := []struct {
		text  string
		color lipgloss.Color
	}{
		{"", Iron},
		{"    ▄▄▄▄▄  ▄▄▄▄  ▄▄▄▄   ▄▄▄▄ ▄▄▄▄▄ ▄  ▄ ▄ ▄▄▄▄▄", Ember},
		{"    █▄▄   █    █ █▄▄▀  █  ▄▄ █▄▄   █▄▀  █   █", Flame},
		{"    █     ▀▄▄▄▄▀ █  ▀▄ ▀▄▄▄▀ █▄▄▄▄ █  ▀▄ █   █", Brass},
		{"", Iron},
	}

	var result strings.Builder
	for _, line := range lines {
		result.WriteString(lipgloss.NewStyle().Foreground(line.color).Render(line.text))
		result.WriteString("\n")
	}
	return result.String()
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	if !IsTTY {
		return strings.Repeat("-", width)
	}
	return lipgloss.NewStyle().
		Foreground(Iron).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := Title.Render(title)
	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 || padRight < 0 {
		return titleStyled
	}

	left := lipgloss.NewStyle().Foreground(Iron).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(Iron).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("✓", message, Green)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARNING: %s", message)
	}
	return StatusLine("!", "WARNING: "+message, Copper)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// Check renders a ✓/✗ diagnostic line
func Check(ok bool, message string) string {
	if !IsTTY {
		if ok {
			return fmt.Sprintf("  [OK] %s", message)
		}
		return fmt.Sprintf("  [FAIL] %s", message)
	}
	if ok {
		return StatusLine("✓", message, Green)
	}
	return StatusLine("✗", message, Pink)
}

// YesNo renders a boolean as YES or NO
func YesNo(b bool) string {
	if b {
		return RenderSuccess("YES")
	}
	return RenderMuted("NO")
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderHighlight renders text in highlight style (TTY-aware)
func RenderHighlight(text string) string {
	return Render(Highlight, text)
}

// RenderSuccess renders text in success style (TTY-aware)
func RenderSuccess(text string) string {
	return Render(Success, text)
}

// RenderError renders text in error style (TTY-aware)
func RenderError(text string) string {
	return Render(Error, text)
}

// RenderWarning renders text in warning style (TTY-aware)
func RenderWarning(text string) string {
	return Render(Warning, text)
}

// RenderTitle renders text in title style (TTY-aware)
func RenderTitle(text string) string {
	return Render(Title, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
