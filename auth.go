package httpexec

import "encoding/base64"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey sends an API key header.
	AuthAPIKey
	// AuthCustom uses a custom header-modifying function.
	AuthCustom
)

// AuthConfig configures request authentication. Auth operates on the
// finalized header set only, so it composes with both protocol variants.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// Name is the API key header name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
	// Apply is a custom function to modify the headers (AuthCustom).
	Apply func(h HeaderSetter)
}

// HeaderSetter is the minimal header surface exposed to custom auth.
type HeaderSetter interface {
	Set(key, value string)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via the X-API-Key header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: "X-API-Key"}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: headerName}
}

// CustomAuth creates a custom auth config with a header modifier function.
func CustomAuth(fn func(h HeaderSetter)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply stamps authentication onto a finalized header set.
func (a *AuthConfig) apply(h HeaderSetter) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		h.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		h.Set("Authorization", "Basic "+cred)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		h.Set(name, a.Key)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(h)
		}
	}
}
