package models

// JWTClaims holds the claims extracted from the identity provider token.
// The token is validated by the gateway in front of the API; the service
// only reads the claims.
type JWTClaims struct {
	Subject           string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}
