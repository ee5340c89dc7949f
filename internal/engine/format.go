package engine

import (
	"math"
	"strconv"
)

// DisplayFloor is the probability below which a table row may be
// hidden and below which a nonzero probability renders as "<0.1".
const DisplayFloor = 0.001

// With four or more outcomes tied for most likely, no single mode
// stands out and nothing is emphasized.
const maxHighlightTies = 3

// Row is one line of a rendered distribution: the outcome, its exact
// probability, and the percentage rounded to one decimal place.
type Row struct {
	Outcome     int     `json:"outcome"`
	Probability float64 `json:"probability"`
	Percentage  float64 `json:"percentage"`
	MostLikely  bool    `json:"most_likely"`
}

// Percentage converts a probability to a percentage rounded to one
// decimal. Rounding happens only here, at the presentation boundary;
// masses are never rounded during accumulation.
func Percentage(p float64) float64 {
	return math.Round(p*1000) / 10
}

// DisplayPercentage renders a percentage for display. A probability
// that is positive but under 0.1% renders as "<0.1" so a rare outcome
// is not mistaken for an impossible one.
func DisplayPercentage(p float64) string {
	if p > 0 && p < DisplayFloor {
		return "<0.1"
	}
	return strconv.FormatFloat(Percentage(p), 'f', 1, 64)
}

// Rows flattens a PMF into display rows ordered by outcome and marks
// the modal outcome(s). Between one and three tied maxima are marked;
// more ties suppress the marking entirely.
func Rows(pmf PMF) []Row {
	outcomes := pmf.Outcomes()
	rows := make([]Row, len(outcomes))

	var maxPct float64
	for i, outcome := range outcomes {
		p := pmf[outcome]
		rows[i] = Row{
			Outcome:     outcome,
			Probability: p,
			Percentage:  Percentage(p),
		}
		if rows[i].Percentage > maxPct {
			maxPct = rows[i].Percentage
		}
	}

	ties := 0
	for i := range rows {
		if rows[i].Percentage == maxPct {
			ties++
		}
	}
	if ties > maxHighlightTies {
		return rows
	}

	for i := range rows {
		rows[i].MostLikely = rows[i].Percentage == maxPct
	}
	return rows
}

// VisibleRows drops rows whose probability is strictly below the
// display floor. This is display-only: goal aggregation and mass
// checks always run on the unfiltered PMF.
func VisibleRows(rows []Row) []Row {
	visible := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Probability >= DisplayFloor {
			visible = append(visible, row)
		}
	}
	return visible
}
