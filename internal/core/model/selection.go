package model

import "time"

// Selection is the set of active dashboard filters.
// Empty Keywords/Locations mean no constraint on that facet; the date facet
// only applies when both Start and End are set.
type Selection struct {
	Start     *time.Time `json:"start_date,omitempty"`
	End       *time.Time `json:"end_date,omitempty"`
	Keywords  []string   `json:"keywords"`
	Locations []string   `json:"locations"`
}

// HasDateRange reports whether the date facet is active.
func (s Selection) HasDateRange() bool {
	return s.Start != nil && s.End != nil
}

// DayLayout is the calendar-day format used at the API and CLI boundary.
const DayLayout = "2006-01-02"

// DayRange parses two calendar days into an inclusive instant range covering
// the whole of the end day. An empty string leaves that bound unset.
func DayRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := time.Parse(DayLayout, start)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if end != "" {
		t, err := time.Parse(DayLayout, end)
		if err != nil {
			return nil, nil, err
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to, nil
}
