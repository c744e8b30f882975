package domain

// ProviderType represents the external identity provider a user signed in with.
type ProviderType string

const (
	ProviderTypeGoogle ProviderType = "google"
	ProviderTypeGitHub ProviderType = "github"
)

// ProviderUserInfo holds the identity attributes reported by the external
// provider at login time. It is ephemeral: produced fresh by the verifier
// on every login attempt and never persisted directly.
type ProviderUserInfo struct {
	Type    ProviderType
	ID      string
	Name    string
	Email   string
	Picture string
}

// GoogleUserInfo is the normalized payload of the Google userinfo endpoint.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
