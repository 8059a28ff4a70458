// Package store implements the two on-disk output directories: saved
// imagery and generated gallery pages. Files are write-once; an existing
// name is rejected rather than overwritten, so the directories are
// append-only and need no locking.
package store
