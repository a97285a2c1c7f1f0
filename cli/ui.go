package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#10B981")
	dimColor     = lipgloss.Color("#9CA3AF")
	errorColor   = lipgloss.Color("#EF4444")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	labelStyle   = lipgloss.NewStyle().Foreground(dimColor)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
	successStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(dimColor).Italic(true)
	dividerStyle = lipgloss.NewStyle().Foreground(dimColor)
)

const (
	iconBuild  = "◈"
	iconServer = "◎"
	iconCheck  = "✓"
	iconCross  = "✗"
)

// UI renders the styled status output docfind prints outside of
// DOCFIND_DEBUG mode.
type UI struct{}

// NewUI creates a UI.
func NewUI() *UI { return &UI{} }

func (u *UI) Header(icon, title string) {
	fmt.Println()
	fmt.Printf("%s %s\n", icon, titleStyle.Render(title))
}

func (u *UI) Info(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func (u *UI) Blank() { fmt.Println() }

func (u *UI) Success(message string) {
	fmt.Printf("%s %s\n", successStyle.Render(iconCheck), message)
}

func (u *UI) Error(message string) {
	fmt.Println()
	fmt.Printf("%s %s\n", errorStyle.Render(iconCross), message)
}

func (u *UI) Hint(message string) {
	fmt.Printf("  %s\n", hintStyle.Render(message))
}

func (u *UI) Divider() {
	fmt.Println(dividerStyle.Render(strings.Repeat("─", 40)))
}

func (u *UI) Summary(items [][2]string) {
	fmt.Println()
	u.Divider()
	for _, item := range items {
		u.Info(item[0], item[1])
	}
	u.Divider()
}

func (u *UI) Stage(label string, d time.Duration) {
	fmt.Printf("  %s %s %s\n", successStyle.Render(iconCheck), label,
		labelStyle.Render(fmt.Sprintf("(%s)", d.Round(time.Millisecond))))
}
