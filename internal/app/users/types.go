package users

// SignupInput carries a new account registration. Name, About and Avatar are
// optional; empty values fall back to the default profile.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

type SigninInput struct {
	Email    string
	Password string
}

// SigninResult is returned on successful authentication.
type SigninResult struct {
	Token string
	Name  string
	Email string
}

// UpdateProfileInput is a partial profile update: nil fields are left
// unchanged.
type UpdateProfileInput struct {
	Name  *string
	About *string
}
