package allergens

import "github.com/rmohr/allergens/pkg/api"

// Settings is the user configuration file. Command line flags take precedence.
type Settings struct {
	LogLevel string `json:"logLevel,omitempty"`
	Output   string `json:"output,omitempty"`
	Verify   bool   `json:"verify,omitempty"`
}

type Candidate struct {
	Allergen    string   `json:"allergen"`
	Ingredients []string `json:"ingredients"`
}

// Report is the full result of a run.
type Report struct {
	Foods       int         `json:"foods"`
	Ingredients int         `json:"ingredients"`
	Allergens   []string    `json:"allergens"`
	Candidates  []Candidate `json:"candidates,omitempty"`
	Safe        []string    `json:"safe"`
	Appearances int         `json:"appearances"`
	Pairs       api.Pairs   `json:"pairs"`
	Dangerous   string      `json:"dangerous"`
	Verified    bool        `json:"verified,omitempty"`
}
