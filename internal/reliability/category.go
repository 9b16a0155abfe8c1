package reliability

import (
	"fmt"
	"strings"
)

// Category selects which event classification of the consolidated dataset
// populates a Dataset. The source data carries each index three times:
// with major events, with major event days excluded, and with loss of
// supply removed.
type Category string

const (
	AllEvents             Category = "all_events"
	WithoutMajorEventDays Category = "without_major_event_days"
	LossOfSupplyRemoved   Category = "loss_of_supply_removed"
)

// ParseCategory converts a config/CLI string to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case AllEvents:
		return AllEvents, nil
	case WithoutMajorEventDays:
		return WithoutMajorEventDays, nil
	case LossOfSupplyRemoved:
		return LossOfSupplyRemoved, nil
	default:
		return "", fmt.Errorf("unknown category %q (expected all_events, without_major_event_days or loss_of_supply_removed)", s)
	}
}

// ColumnSuffix returns the suffix used in the consolidated dataset's
// column names, e.g. SAIDI_All_Events.
func (c Category) ColumnSuffix() string {
	switch c {
	case AllEvents:
		return "All_Events"
	case WithoutMajorEventDays:
		return "Without_Major_Event_Days"
	case LossOfSupplyRemoved:
		return "Loss_of_Supply_Removed"
	default:
		return ""
	}
}

// Description returns the phrasing used in narrative text.
func (c Category) Description() string {
	switch c {
	case AllEvents:
		return "including major events"
	case WithoutMajorEventDays:
		return "excluding major event days"
	case LossOfSupplyRemoved:
		return "excluding loss of supply"
	default:
		return ""
	}
}
