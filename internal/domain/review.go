package domain

import "time"

// Review is a visitor testimonial with a star rating.
type Review struct {
	ID        string
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ReviewStats aggregates all reviews. Avg is formatted to one decimal place
// to match the public API contract.
type ReviewStats struct {
	Avg   string `json:"avg"`
	Count int64  `json:"count"`
}

// ValidateReview validates a Review instance.
func ValidateReview(r *Review) error {
	if r.Name == "" || r.Comment == "" {
		return NewDomainError(ErrCodeValidation, "name and comment are required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
