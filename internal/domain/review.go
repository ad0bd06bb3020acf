package domain

import "time"

// Review carries the moderation flags: reviews enter unapproved and become
// publicly visible only after an admin approves them.
type Review struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"product_id"`
	UserID              string    `json:"user_id"`
	Rating              int32     `json:"rating"`
	Comment             string    `json:"comment,omitempty"`
	IsApproved          bool      `json:"is_approved"`
	IsVerified          bool      `json:"is_verified"`
	FeaturedTestimonial bool      `json:"featured_testimonial"`
	CreatedAt           time.Time `json:"created_at"`
}
