package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for the pipeline failure taxonomy. Every fatal error
// produced by an ingestion run wraps exactly one of these so callers can
// classify failures without string matching.
var (
	ErrInput        = errors.New("input error")
	ErrStructure    = errors.New("structure error")
	ErrExternalTool = errors.New("external tool error")
	ErrCatalog      = errors.New("catalog error")
)

// Wrap builds an error message that includes pipeline context while tagging
// it with the provided marker. The marker should be one of the exported
// sentinel errors above; nil defaults to ErrStructure.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrStructure
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// RollsBack reports whether the failure class requires deleting the
// partially-materialized destination. Catalog failures happen after the
// filesystem work succeeded and intentionally leave it in place.
func RollsBack(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrCatalog)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
