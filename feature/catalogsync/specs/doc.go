// Package specs extracts memory and storage sizes from free-text listing titles.
//
// Extraction never fails: a field that no rule matches is 0, which the catalog
// treats as unknown and hides from filtered browsing.
package specs
