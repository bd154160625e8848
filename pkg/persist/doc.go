// Package persist names and writes merged order lines.
package persist
