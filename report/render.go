package report

import (
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/olekukonko/tablewriter"

	"standup-lab/domain"
)

const timeGrain = 100 * time.Millisecond

var categoryTitles = map[domain.Category]string{
	domain.CategoryYesterday: "Yesterday",
	domain.CategoryToday:     "Today",
	domain.CategoryBlocker:   "Blockers",
	domain.CategoryUnknown:   "Other",
}

// Render writes the full meeting summary: an overview table followed by
// per-participant statement sections and agenda similarity lines.
func Render(w io.Writer, r Report) {
	fmt.Fprintln(w, "=== Standup Summary ===")
	renderOverview(w, r)

	for _, section := range r.Sections {
		fmt.Fprintf(w, "\n--- %s ---\n", title(section.Name))
		renderStatements(w, section)
		renderMatches(w, section)
	}
}

func renderOverview(w io.Writer, r Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Participant", "State", "Used", "Allocated", "Statements"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, section := range r.Sections {
		count := 0
		for _, lines := range section.ByCategory {
			count += len(lines)
		}
		table.Append([]string{
			title(section.Name),
			section.State.String(),
			section.Used.Round(timeGrain).String(),
			section.Allocated.String(),
			fmt.Sprintf("%d", count),
		})
	}
	table.Render()
}

func renderStatements(w io.Writer, section Section) {
	empty := true
	for _, category := range append(domain.Categories, domain.CategoryUnknown) {
		lines := section.ByCategory[category]
		if len(lines) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(w, "%s:\n", categoryTitles[category])
		for _, line := range lines {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
	if empty {
		fmt.Fprintln(w, "No statements recorded.")
	}
}

func renderMatches(w io.Writer, section Section) {
	if len(section.Matches) == 0 {
		return
	}
	fmt.Fprintln(w, "Agenda coverage:")
	for _, match := range section.Matches {
		fmt.Fprintf(w, "  - %q (agenda: %q, similarity: %.2f)\n",
			match.Statement, match.AgendaItem, match.Score)
	}
}

func title(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
