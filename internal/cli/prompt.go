package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/season"
)

// Prompter runs the blocking console prompts. It is a thin shell around the
// pure report core, reading from any reader so tests can script it.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter builds a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// PlayerName asks for a player name, re-prompting on empty input.
func (p *Prompter) PlayerName() (string, error) {
	for {
		fmt.Fprint(p.out, "Enter the name of the player: ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Please enter a name.")
	}
}

// ChooseCandidate presents an indexed menu and blocks for a valid selection.
// Out-of-range or non-numeric input re-prompts.
func (p *Prompter) ChooseCandidate(candidates []players.Candidate) (players.Candidate, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	fmt.Fprintln(p.out, "Multiple players found. Please choose one:")
	for i, candidate := range candidates {
		span := ""
		if candidate.FromYear > 0 {
			span = fmt.Sprintf(" (%d-%d)", candidate.FromYear, candidate.ToYear)
		}
		fmt.Fprintf(p.out, "  %d. %s%s\n", i+1, candidate.FullName, span)
	}

	for {
		fmt.Fprint(p.out, "Enter the corresponding number: ")
		line, err := p.readLine()
		if err != nil {
			return players.Candidate{}, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(candidates) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(candidates))
			continue
		}
		return candidates[choice-1], nil
	}
}

// Season asks for a season, re-prompting until the input parses. Shot
// tracking only exists from 1996-97 onward, so earlier seasons get a note
// rather than a rejection.
func (p *Prompter) Season() (season.Season, error) {
	for {
		fmt.Fprint(p.out, "Enter the season (example: 1996-97): ")
		line, err := p.readLine()
		if err != nil {
			return season.Season{}, err
		}
		parsed, parseErr := season.Parse(line)
		if parseErr != nil {
			fmt.Fprintf(p.out, "%v\n", parseErr)
			continue
		}
		if !parsed.Tracked() {
			fmt.Fprintf(p.out, "Note: shot tracking began in %d-97; the chart will be empty for this season.\n", season.FirstTrackedStartYear)
		}
		return parsed, nil
	}
}
