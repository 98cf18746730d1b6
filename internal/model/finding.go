package model

// Finding is a headline statistic displayed as a summary card.
// Exactly three findings appear in the showcase grid, and each card
// displays its Value and Metric verbatim with no transformation.
type Finding struct {
	// Metric is the short label for what was measured.
	Metric string `json:"metric"`

	// Value is the formatted headline number, a percentage or a
	// multiplier such as "42%" or "3.2x". It is display text, not a
	// quantity, and is never parsed.
	Value string `json:"value"`

	// Description explains the finding in one or two sentences.
	Description string `json:"description"`

	// Source is a free-text citation marker such as "[3]". It is not a
	// validated foreign key into the reference list; no referential
	// integrity is enforced or needed.
	Source string `json:"source"`
}
