package domain

// SortOrder selects how comments are ordered for display.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder maps a user-supplied string to a SortOrder.
// Anything other than "oldest" sorts newest first.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortOldest {
		return SortOldest
	}
	return SortNewest
}

// Toggle returns the other sort order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOldest {
		return SortNewest
	}
	return SortOldest
}

func (o SortOrder) String() string {
	if o == "" {
		return string(SortNewest)
	}
	return string(o)
}
