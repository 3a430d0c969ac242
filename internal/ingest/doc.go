// Package ingest sequences a game package through inspection,
// materialization, the optional external build, entry-point and thumbnail
// resolution, and catalog reconciliation, rolling the destination back when
// a run fails partway.
package ingest
