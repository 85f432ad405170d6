// Package testinfra starts the containers used by integration tests.
// Tests using it carry the integration build tag and need a Docker daemon.
package testinfra
