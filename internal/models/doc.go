// Package models defines the core domain models for the commission tool.
//
// # Models
//
//   - Person: one editable roster row (name, monthly profit, month)
//   - Snapshot: the persisted form of the roster, tagged with a schema version
//
// Computed payouts are not models: they are derived from a Person's profit by
// the calculator package on every read and are never stored.
//
// # Design Principles
//
//  1. **Inputs only**: the roster stores raw inputs, never derived values
//  2. **Stable identity**: Person.ID is a UUID assigned once and never reused
//  3. **Versioned persistence**: Snapshot carries a version so old or foreign
//     records can be detected and discarded on load
package models
