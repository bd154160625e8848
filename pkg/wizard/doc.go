// Package wizard runs the create-an-order-line loop: pick a template,
// interview the operator, merge, summarise, confirm and save.
package wizard
