package category

// ID identifies one of the fixed expense categories.
type ID string

const (
	Food          ID = "food"
	Transport     ID = "transport"
	Utilities     ID = "utilities"
	Entertainment ID = "entertainment"
	Shopping      ID = "shopping"
	Other         ID = "other"
)

// Entry carries the display attributes of a category.
type Entry struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// The registry is fixed at build time. Other must stay last: it doubles
// as the fallback for unknown ids.
var entries = []Entry{
	{ID: Food, Name: "Food & Dining", Color: "#FF9800"},
	{ID: Transport, Name: "Transport", Color: "#2196F3"},
	{ID: Utilities, Name: "Utilities", Color: "#9C27B0"},
	{ID: Entertainment, Name: "Entertainment", Color: "#E91E63"},
	{ID: Shopping, Name: "Shopping", Color: "#00BCD4"},
	{ID: Other, Name: "Other", Color: "#607D8B"},
}

// Lookup resolves a category id to its registry entry. Unknown or empty
// ids resolve to the Other entry; Lookup never fails.
func Lookup(id ID) Entry {
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}

	return entries[len(entries)-1]
}

// All returns the registry entries in declaration order. The returned
// slice is a copy and safe to mutate.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// Valid reports whether id names a known category.
func Valid(id ID) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}

	return false
}
