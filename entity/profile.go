package entity

// Profile - the installation's player profile and settings. Created once,
// persisted by the profile repository.
type Profile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Theme        string     `json:"theme"`
	SoundEnabled bool       `json:"sound_enabled"`
	Difficulty   Difficulty `json:"difficulty"`
}
