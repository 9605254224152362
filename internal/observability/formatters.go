// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxListItems is the default number of items to display in lists
	maxListItems = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of a match report.
func (p *Printer) PrintReport(rep *types.MatchReport) {
	if rep == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f (%s)\n", rep.OverallScore, rep.Tier))
	if rep.GatedByMustHaves {
		sb.WriteString(fmt.Sprintf("Gated:    yes, %d must-have(s) missing\n", len(rep.MissingMustHaves)))
	}
	sb.WriteString(fmt.Sprintf("Modes:    parsing=%s embeddings=%s\n", rep.Modes.Parsing, rep.Modes.Embeddings))
	sb.WriteString("\n")
	for _, name := range types.ComponentNames {
		sb.WriteString(fmt.Sprintf("%-28s %6.1f\n", name, rep.Components[name]))
	}
	p.printBox("Match Report", strings.TrimRight(sb.String(), "\n"))

	if len(rep.MissingMustHaves) > 0 {
		p.printBox("Missing Must-Haves", joinCapped(rep.MissingMustHaves))
	}
	if len(rep.Improvements) > 0 {
		p.printBox("Improvements", joinCapped(rep.Improvements))
	}
}

// PrintMatchedLines outputs the per-responsibility evidence map.
func (p *Printer) PrintMatchedLines(rep *types.MatchReport) {
	if rep == nil || len(rep.MatchedLines) == 0 {
		return
	}

	var sb strings.Builder
	for _, entry := range rep.MatchedLines {
		supporting := "(no supporting line)"
		if entry.CVSupportingLine != nil {
			supporting = *entry.CVSupportingLine
		}
		sb.WriteString(fmt.Sprintf("%.3f  %s\n", entry.Similarity, entry.JDLine))
		sb.WriteString(fmt.Sprintf("       ↳ %s\n", supporting))
	}
	p.printBox("Matched Lines", strings.TrimRight(sb.String(), "\n"))
}

// joinCapped joins up to maxListItems items, noting how many were omitted.
func joinCapped(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i == maxListItems {
			sb.WriteString(fmt.Sprintf("... and %d more", len(items)-maxListItems))
			break
		}
		sb.WriteString("- " + item + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
