// Package storage defines the persistence interfaces and serialization
// for content units. The badger subpackage provides the BadgerDB
// implementation; everything above it depends only on these interfaces.
package storage
