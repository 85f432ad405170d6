package sqlstage

import "context"

// Cleaner normalizes a directory of dump files into canonical statement files.
type Cleaner interface {
	// Clean processes every file of config.InputDir in file-store order.
	// It stops at the first file whose format cannot be resolved;
	// files written before that point are kept.
	Clean(ctx context.Context, config CleanConfig) (CleanResult, error)
}

// Loader replays normalized files through the external database client.
type Loader interface {
	// Load runs the client once per file in the planned order and stops
	// at the first non-zero exit status. Nothing is rolled back.
	Load(ctx context.Context, config LoadConfig) (LoadResult, error)
}
