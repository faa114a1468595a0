package google

// DefaultOAuthScopes are the Google OAuth scopes the assistant requires.
// Only calendar access plus basic identity; nothing else is requested.
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar",
}
