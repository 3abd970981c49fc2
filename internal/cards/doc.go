// Package cards renders event-generator configuration cards from an
// analysis setup: parameter cards are patched in place from a template,
// reweight cards are generated from the benchmark list, and run cards have
// their systematics settings replaced.
//
// Every Render function works on text so it can be tested without touching
// the file system; the Export functions add the file I/O around them.
package cards
