package minutes

import "github.com/johnquangdev/minutes-generator/internal/domain/entities"

// MinutesResponse is the API shape of a generated minutes document.
type MinutesResponse struct {
	Title        string                `json:"title"`
	Summary      string                `json:"summary"`
	Participants []string              `json:"participants"`
	Minutes      string                `json:"minutes"`
	Actions      []entities.ActionItem `json:"actions"`
	ArchiveKey   string                `json:"archive_key,omitempty"`
}

// FromResult maps the pipeline result into the response shape.
func FromResult(res *entities.MinutesResult) *MinutesResponse {
	return &MinutesResponse{
		Title:        res.Title,
		Summary:      res.Summary,
		Participants: res.Participants,
		Minutes:      res.Minutes,
		Actions:      res.Actions,
	}
}
