// Package document holds the small set of helpers used to treat decoded JSON
// objects (map[string]any trees) as values: deep copies and dotted-path
// reads, writes and deletes. Numeric path segments address slice elements,
// so "location.0.quantity" reaches the quantity of the first location.
package document
