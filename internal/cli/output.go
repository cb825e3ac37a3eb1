package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nba-shotchart/internal/app/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Bold(true).Width(16)
	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
)

func printSeasons(w io.Writer, name string, seasons []string) {
	fmt.Fprintf(w, "\nSeasons played by %s (newest first):\n", name)
	for _, s := range seasons {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintln(w)
}

// statBlock formats the season stat summary as a bordered block.
func statBlock(rpt report.Report) string {
	agg, derived := rpt.Aggregate, rpt.Derived
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s, %s Season", rpt.Player.FullName, rpt.Season)),
		"",
		statLine("Team", rpt.TeamName),
		statLine("Years in league", fmt.Sprintf("%d", derived.YearsInLeague)),
		statLine("Games played", fmt.Sprintf("%d", agg.GamesPlayed)),
		statLine("PPG", fmt.Sprintf("%.1f", derived.PPG)),
		statLine("APG", fmt.Sprintf("%.1f", derived.APG)),
		statLine("RPG", fmt.Sprintf("%.1f", derived.RPG)),
		statLine("FG%", shootingLine(derived.FGPct, agg.FieldGoalsMade, agg.FieldGoalsAttempted)),
		statLine("3PT%", shootingLine(derived.ThreePct, agg.ThreeMade, agg.ThreeAttempted)),
	}
	return blockStyle.Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + value
}

func shootingLine(pct float64, made, attempted int) string {
	return fmt.Sprintf("%.2f%% (%d - %d)", pct, made, attempted)
}

// chartStatLines are the overlay lines drawn onto the chart footer.
func chartStatLines(rpt report.Report) []string {
	agg, derived := rpt.Aggregate, rpt.Derived
	return []string{
		rpt.TeamName,
		"FG%: " + shootingLine(derived.FGPct, agg.FieldGoalsMade, agg.FieldGoalsAttempted),
		"3PT%: " + shootingLine(derived.ThreePct, agg.ThreeMade, agg.ThreeAttempted),
	}
}

func chartTitle(rpt report.Report) string {
	return fmt.Sprintf("%s's Shot Chart : %s Season", rpt.Player.FullName, rpt.Season)
}
