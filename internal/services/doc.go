// Package services implements the clean and load pipelines.
//
// CleanService classifies and normalizes every dump file of a directory;
// LoadService replays the normalized files through the external client.
// Both are strictly sequential and stop at the first failure without
// undoing earlier work.
package services
