package models

// Person represents one row of the commission roster.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string `json:"id"`

	// Name is the display name. May be empty until the user fills it in.
	Name string `json:"name"`

	// Profit is the monthly profit the commission is computed from.
	// Always non-negative; invalid input is coerced to 0 upstream.
	Profit float64 `json:"profit"`

	// Month is the calendar month the profit belongs to, in "YYYY-MM" form.
	Month string `json:"month"`
}

// SnapshotVersion is the schema version written with every persisted roster.
// Records carrying any other version are discarded on load.
const SnapshotVersion = 1

// Snapshot is the persisted form of the roster.
type Snapshot struct {
	// Version is the schema marker, see SnapshotVersion.
	Version int `json:"version"`

	// People is the roster in display order.
	People []Person `json:"people"`
}
