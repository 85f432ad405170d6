// Package scanner discovers the files of a single directory and derives
// their names and stems. It is used both to enumerate raw dump files for
// cleaning and to re-enumerate normalized files for loading.
package scanner
