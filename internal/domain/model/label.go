package model

// PackSummaryName is the display name of the trailing pack-summary card.
const PackSummaryName = "Pack Summary"

// LabelCard is one printable grid cell. It comes in three variants:
//
//   - primary carry card: Count is set to the customer's full carry-out total
//   - continuation card: Count is nil, only the name is shown
//   - pack-summary card: Doubles and Singles are set, Count is nil
//
// Cards are created once by the sequencer and never mutated afterwards.
//
// @Description One printable label cell (primary, continuation, or pack summary)
type LabelCard struct {
	// Name is the customer name, or "Pack Summary" for the summary card
	Name string `json:"name" example:"Alice"`
	// Count is the carry-out total, present only on the primary card
	Count *int `json:"count,omitempty" example:"4"`
	// Doubles is the total number of two-item packs (pack-summary card only)
	Doubles *int `json:"doubles,omitempty" example:"3"`
	// Singles is the total number of one-item packs (pack-summary card only)
	Singles *int `json:"singles,omitempty" example:"1"`
} // @name LabelCard

// NewPrimaryCard returns the card carrying a customer's carry-out total.
func NewPrimaryCard(name string, count int) LabelCard {
	return LabelCard{Name: name, Count: &count}
}

// NewContinuationCard returns a blank-count card reserving one more
// physical label for the same customer.
func NewContinuationCard(name string) LabelCard {
	return LabelCard{Name: name}
}

// NewPackSummaryCard returns the aggregate doubles/singles card emitted
// after all customer cards.
func NewPackSummaryCard(doubles, singles int) LabelCard {
	return LabelCard{Name: PackSummaryName, Doubles: &doubles, Singles: &singles}
}

// IsPackSummary reports whether the card is the pack-summary variant.
func (c LabelCard) IsPackSummary() bool {
	return c.Doubles != nil || c.Singles != nil
}

// DoublesOrZero returns the doubles total, defaulting to 0 when absent.
func (c LabelCard) DoublesOrZero() int {
	if c.Doubles == nil {
		return 0
	}
	return *c.Doubles
}

// SinglesOrZero returns the singles total, defaulting to 0 when absent.
func (c LabelCard) SinglesOrZero() int {
	if c.Singles == nil {
		return 0
	}
	return *c.Singles
}
