package domain

import "time"

// SignupProfile is a student signup record collected by the web front-end.
type SignupProfile struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Organization    string    `json:"organization"`
	Major           string    `json:"major"`
	University      string    `json:"university"`
	Location        string    `json:"location"`
	PurposeChoices  []string  `json:"purpose_choices"`
	PurposeText     string    `json:"purpose_text"`
	TermsAccepted   bool      `json:"terms_accepted"`
	PrivacyAccepted bool      `json:"privacy_accepted"`
	CreatedAt       time.Time `json:"created_at"`
}
