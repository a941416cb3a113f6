package allergens

// Records is the structured alternative to the line based food list.
type Records struct {
	Foods []Record `json:"foods"`
}

type Record struct {
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
}
