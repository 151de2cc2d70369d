package wizard

import "errors"

var (
	ErrSubmitInProgress = errors.New("wizard.submit_in_progress")
	ErrNotOnReviewStep  = errors.New("wizard.not_on_review_step")
	ErrSubmitFailed     = errors.New("wizard.submit_failed")
)
