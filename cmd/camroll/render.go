package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"camroll/pkg/types"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func errorText(s string) string {
	return errorStyle.Render(s)
}

// renderActions lists the placement plan, used for dry-run output.
func renderActions(actions []types.Action) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Plan: %d actions", len(actions))))
	b.WriteString("\n")
	for _, a := range actions {
		b.WriteString("  ")
		b.WriteString(pathStyle.Render(a.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary reports the run so a human can resolve anything skipped.
func renderSummary(outcomes []types.Outcome, conflicts []types.Conflict, skipped []types.Skipped) string {
	transferred, failed := transferredCount(outcomes)

	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("Transferred %d %s", transferred, plural(transferred, "file"))))
	b.WriteString("\n")

	if failed > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d %s failed", failed, plural(failed, "transfer"))))
		b.WriteString("\n")
	}

	if len(conflicts) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d placement %s (files left untouched):", len(conflicts), plural(len(conflicts), "conflict"))))
		b.WriteString("\n")
		for _, c := range conflicts {
			b.WriteString("  ")
			b.WriteString(pathStyle.Render(fmt.Sprintf("%s (destination %s exists)", c.Src, c.Dest)))
			b.WriteString("\n")
		}
	}

	if len(skipped) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d %s skipped during scan:", len(skipped), plural(len(skipped), "file"))))
		b.WriteString("\n")
		for _, s := range skipped {
			b.WriteString("  ")
			b.WriteString(pathStyle.Render(fmt.Sprintf("%s: %v", s.Path, s.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderOrphans lists cleanup results.
func renderOrphans(orphans []string, dryRun bool) string {
	if len(orphans) == 0 {
		return successStyle.Render("No orphaned previews found") + "\n"
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d orphaned %s:", verb, len(orphans), plural(len(orphans), "preview"))))
	b.WriteString("\n")
	for _, o := range orphans {
		b.WriteString("  ")
		b.WriteString(pathStyle.Render(o))
		b.WriteString("\n")
	}
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
