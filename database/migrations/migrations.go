// Package migrations registers the venuebook schema with pkg/migration.
// Import it for side effects wherever migrations run.
package migrations
