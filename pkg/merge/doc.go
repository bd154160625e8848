// Package merge turns a template document plus the answers collected for an
// order line into the final PO line record. Merge is pure: the template is
// deep-copied and nothing passed in is modified, so a loaded template can be
// reused for any number of records.
package merge
