package project

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}
	if req.Spent.IsNegative() {
		return fmt.Errorf("%w: spent must not be negative", ErrInvalidInput)
	}
	if req.Progress < 0 || req.Progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if end := strings.TrimSpace(req.EndDate); end != "" {
		endDate, err := time.Parse(dateLayout, end)
		if err != nil {
			return fmt.Errorf("%w: end date must be YYYY-MM-DD", ErrInvalidInput)
		}
		if endDate.Before(start) {
			return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
		}
	}
	return nil
}
