package invoice

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateRecordInput rejects a record request before anything is written.
func ValidateRecordInput(req RecordRequest) error {
	if req.ProjectID <= 0 {
		return fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(req.Date)); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	return nil
}
