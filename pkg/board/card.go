package board

// Card is a unit of work with a point estimate. Cards are compared by
// pointer identity; two cards with identical fields remain distinct.
// The column back-reference is nil until the card is added to an
// iteration, and only Iteration writes it.
type Card struct {
	ID          string
	Title       string
	Description string

	estimate int
	column   *Column
}

// NewCard creates a card with the given estimate.
// Returns ErrEmptyName if the title is empty, ErrNegativeEstimate if
// the estimate is negative.
func NewCard(title, description string, estimate int) (*Card, error) {
	if title == "" {
		return nil, ErrEmptyName
	}
	if estimate < 0 {
		return nil, ErrNegativeEstimate
	}
	return &Card{Title: title, Description: description, estimate: estimate}, nil
}

// Estimate returns the card's point estimate.
func (c *Card) Estimate() int {
	return c.estimate
}

// SetEstimate re-estimates the card. Returns ErrNegativeEstimate on
// negative input. Changing an estimate does not re-check any WIP limit
// the card's current column may carry.
func (c *Card) SetEstimate(estimate int) error {
	if estimate < 0 {
		return ErrNegativeEstimate
	}
	c.estimate = estimate
	return nil
}

// Column returns the column the card currently occupies, or nil if the
// card has not been added to an iteration.
func (c *Card) Column() *Column {
	return c.column
}
