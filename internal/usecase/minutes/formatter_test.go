package minutes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

func TestFormatMinutes_FullLayout(t *testing.T) {
	actions := []entities.ActionItem{
		{Task: "Alice will submit the report by Friday.", Person: "Alice", Deadline: "Friday"},
		{Task: "We must fix the build.", Person: "", Deadline: ""},
	}

	got := FormatMinutes("2024-03-01 10:30", "Everything shipped on time.", actions, []string{"Alice", "Bob"})

	want := "Meeting Title: 2024-03-01 10:30\n" +
		"Participants: Alice, Bob\n\n" +
		"Summary:\nEverything shipped on time.\n\n" +
		"Action Items:\n" +
		"- Task: Alice will submit the report by Friday. | Person: Alice | Deadline: Friday\n" +
		"- Task: We must fix the build. | Person:  | Deadline: \n"

	assert.Equal(t, want, got)
}

func TestFormatMinutes_NoActionsOmitsSection(t *testing.T) {
	got := FormatMinutes("2024-03-01 10:30", "Short meeting.", nil, []string{"Alice"})

	assert.NotContains(t, got, "Action Items:")
	assert.Equal(t, "Meeting Title: 2024-03-01 10:30\n"+
		"Participants: Alice\n\n"+
		"Summary:\nShort meeting.\n\n", got)
}

func TestFormatMinutes_NoParticipants(t *testing.T) {
	got := FormatMinutes("t", "s", nil, nil)

	assert.Contains(t, got, "Participants: \n")
}
