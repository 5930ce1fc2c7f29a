// Package types defines the loot board entities, the Storage interface for
// durable key-value backends, and the standard error values shared by the
// board, the storage backends, and the CLI.
package types
