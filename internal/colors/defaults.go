package colors

import "fmt"

var defaults = []Record{
	{Name: "Turquoise", Hex: "#1abc9c"},
	{Name: "Red", Hex: "#e74c3c"},
	{Name: "Yellow", Hex: "#f1c40f"},
}

// Defaults returns a fresh copy of the seed set loaded on every startup.
func Defaults() []Record {
	out := make([]Record, len(defaults))
	copy(out, defaults)
	return out
}

// Validate checks a seed list: every name non-empty and unique, every hex
// well formed. It returns the records with normalized hex codes.
func Validate(records []Record) ([]Record, error) {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Name, ErrDuplicateName)
		}
		hex, err := NormalizeHex(r.Hex)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Name, err)
		}
		seen[r.Name] = struct{}{}
		out = append(out, Record{Name: r.Name, Hex: hex})
	}
	return out, nil
}
