package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"trip-route-service/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6"))

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 1)
)

// useStyles reports whether w is an interactive terminal that should get
// colours and borders.
func useStyles(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type renderer struct {
	w      io.Writer
	styled bool
}

func newRenderer(w io.Writer, styled bool) *renderer {
	return &renderer{w: w, styled: styled}
}

func (r *renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func num(v float64) string {
	if math.IsInf(v, 0) {
		return "unreachable"
	}
	return fmt.Sprintf("%.2f", v)
}

func (r *renderer) path(p domain.Path) {
	if len(p.Stops) == 0 {
		fmt.Fprintln(r.w, r.paint(dimStyle, "No destinations to visit."))
		return
	}
	fmt.Fprintln(r.w, r.paint(titleStyle, "Optimal visiting order"))
	fmt.Fprintln(r.w, strings.Join(p.Stops, " → "))
	fmt.Fprintf(r.w, "Distance: %s km\n", r.paint(statStyle, num(p.TotalDistanceKm)))
}

// baseline compares the greedy nearest-neighbour order with the optimum.
func (r *renderer) baseline(greedy, optimal domain.Path) {
	fmt.Fprintf(r.w, "%s %s km (%s)\n",
		r.paint(dimStyle, "Nearest-neighbour baseline:"),
		num(greedy.TotalDistanceKm),
		strings.Join(greedy.Stops, " → "),
	)
	saved := greedy.TotalDistanceKm - optimal.TotalDistanceKm
	if saved > 1e-9 {
		fmt.Fprintf(r.w, "Optimal order saves %s km\n", r.paint(statStyle, num(saved)))
	}
}

func (r *renderer) plan(plan *domain.TripPlan) {
	fmt.Fprintln(r.w, r.paint(titleStyle, fmt.Sprintf("Trip plan (%s)", plan.Criterion)))
	r.path(plan.Path)

	for _, f := range plan.Unavailable {
		r.warn(f.Err.Error())
	}

	for i, it := range plan.Alternatives {
		var b strings.Builder
		fmt.Fprintln(&b, r.paint(subtitleStyle, fmt.Sprintf("Option %d", i+1)))
		fmt.Fprintf(&b, "Total Time: %s min | Total Cost: %s | Distance: %s km | Mode Changes: %d\n",
			r.paint(statStyle, num(it.TotalTimeMin())),
			r.paint(statStyle, num(it.TotalCost())),
			r.paint(statStyle, num(it.TotalDistanceKm())),
			it.ModeChanges(),
		)
		for _, leg := range it.Legs {
			fmt.Fprintf(&b, "  %s → %s: %s %s\n",
				leg.From, leg.To,
				leg.Selected.Mode,
				r.paint(dimStyle, fmt.Sprintf("(%s min, cost %s)", num(leg.Selected.TotalTimeMin), num(leg.Selected.Cost))),
			)
		}

		block := strings.TrimRight(b.String(), "\n")
		if r.styled {
			block = boxStyle.Render(block)
		}
		fmt.Fprintln(r.w, block)
	}
}

func (r *renderer) note(msg string) {
	fmt.Fprintln(r.w, r.paint(successStyle, msg))
}

func (r *renderer) warn(msg string) {
	fmt.Fprintln(r.w, r.paint(errorStyle, "warning: "+msg))
}
