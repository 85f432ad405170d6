// Package loadtest runs clean and load end to end against a MySQL container.
//
//	go test -tags integration ./internal/loadtest/...
package loadtest
