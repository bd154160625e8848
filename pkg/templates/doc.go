// Package templates discovers and loads PO line templates: JSON documents
// holding a baseline order line plus optional "_description" and
// "_template_version" metadata. Templates are loaded once and handed out as
// deep copies so callers cannot change the loaded set.
package templates
