package minutes

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

// FormatMinutes renders the structured result into the plain-text minutes
// document. Pure string composition, no escaping.
func FormatMinutes(title, summary string, actions []entities.ActionItem, participants []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Meeting Title: %s\n", title)
	fmt.Fprintf(&b, "Participants: %s\n\n", strings.Join(participants, ", "))
	b.WriteString("Summary:\n")
	b.WriteString(summary)
	b.WriteString("\n\n")

	// When there are no action items the section is omitted entirely,
	// header included.
	if len(actions) > 0 {
		b.WriteString("Action Items:\n")
		for _, a := range actions {
			fmt.Fprintf(&b, "- Task: %s | Person: %s | Deadline: %s\n", a.Task, a.Person, a.Deadline)
		}
	}

	return b.String()
}
