package models

// Activity is one catalog entry together with its roster.
type Activity struct {
	Name            string
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft is capacity minus current roster size. It is deliberately not
// clamped: the server is the source of truth and an over-full activity
// reports a negative number.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
