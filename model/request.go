package model

// SignUpInput is the payload of the signUp mutation. Validation tags keep
// bad data out at the API boundary.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload of the login mutation. A single field carries
// either the email or the username.
type LoginInput struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
}

// CreateOrUpdateCutReviewInput is the payload of the review upsert mutation.
type CreateOrUpdateCutReviewInput struct {
	CutID    int    `json:"cutId" validate:"required,min=1"`
	Contents string `json:"contents" validate:"required,max=500"`
}
