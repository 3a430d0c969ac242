// Package catalog owns the persistent game catalog document: its record
// shape, the whole-document JSON store, and the upsert reconciliation the
// ingestion pipeline commits through.
package catalog
