package outfits

import (
	"fmt"
	"strings"
)

const (
	reasonInsufficientCandidates = "Not enough items are available to build an outfit. At least 2 items are needed."
	reasonMalformedOutput        = "The stylist returned a response in an unexpected format. Please try again."
	reasonInsufficientResults    = "The stylist could not put together a complete outfit from the available items."
	reasonUnavailableClause      = " Some suggested items are not available."
	reasonDuplicateClause        = " Some suggested items were repeated."
	reasonNothingAvailable       = "None of the suggested items are currently available. Please try again."
	reasonFallback               = "Here is an outfit we think you'll love!"
)

func generationFailedReason(err error) string {
	msg := "unknown error"
	if err != nil {
		if m := strings.TrimSpace(err.Error()); m != "" {
			msg = m
		}
	}
	return fmt.Sprintf("The stylist could not generate an outfit: %s", msg)
}

func insufficientResultsReason(rawCount int, stats validationStats) string {
	if rawCount > 0 && stats.Accepted == 0 {
		return reasonNothingAvailable
	}
	reason := reasonInsufficientResults
	if stats.Invalid > 0 {
		reason += reasonUnavailableClause
	}
	if stats.Duplicate > 0 {
		reason += reasonDuplicateClause
	}
	return reason
}
