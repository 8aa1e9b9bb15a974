package minutes

// GenerateMinutesRequest carries the form fields that accompany the
// uploaded artifact. Zero length bounds fall back to server defaults.
// When both bounds are given, max_len must exceed min_len.
type GenerateMinutesRequest struct {
	Participants string `form:"participants"`
	MaxLen       int    `form:"max_len" validate:"omitempty,min=1,max=1024,gtfield=MinLen"`
	MinLen       int    `form:"min_len" validate:"omitempty,min=1,max=1024"`
}
