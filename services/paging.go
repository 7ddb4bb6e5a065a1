package services

import (
	"action-notes/database"
	"action-notes/validator"
	"fmt"
)

// checkPage rejects page bounds outside 1..MaxLimit and negative offsets.
func checkPage(limit, offset int) error {
	if limit < 1 || limit > database.MaxLimit {
		return validator.FieldError("limit", "range",
			fmt.Sprintf("limit must be between 1 and %d", database.MaxLimit))
	}
	if offset < 0 {
		return validator.FieldError("skip", "gte", "skip must be greater than or equal to 0")
	}
	return nil
}
