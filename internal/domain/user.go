package domain

// User is the domain representation of a user account and its public profile.
type User struct {
	ID    UserID
	Name  string
	About string
	// Avatar is a URL to the user's avatar image.
	Avatar string
	Email  string
	// PasswordDigest is the bcrypt digest of the account password.
	// It must never be rendered in any API response.
	PasswordDigest string
}

// Default profile values applied when signup omits the optional fields.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)
