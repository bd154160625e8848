// Package present builds and draws the order summary shown before a record
// is saved.
package present
