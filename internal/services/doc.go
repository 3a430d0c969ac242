// Package services holds the error taxonomy shared by the ingestion
// pipeline and its collaborators.
package services
