package constant

// AuthType is the channel an account registered through. It is fixed at creation.
type AuthType string

const (
	AuthTypeEmail AuthType = "EMAIL"
	AuthTypePhone AuthType = "PHONE"
)

func (t AuthType) Valid() bool {
	return t == AuthTypeEmail || t == AuthTypePhone
}

// AuthStatus is the position of an account in the onboarding flow.
type AuthStatus string

const (
	AuthStatusNew          AuthStatus = "NEW"
	AuthStatusCodeVerified AuthStatus = "CODE_VERIFIED"
	AuthStatusDone         AuthStatus = "DONE"
	AuthStatusPhotoStep    AuthStatus = "PHOTO_STEP"
)

// Rank orders the statuses along the onboarding flow; unknown statuses rank -1.
func (s AuthStatus) Rank() int {
	switch s {
	case AuthStatusNew:
		return 0
	case AuthStatusCodeVerified:
		return 1
	case AuthStatusDone:
		return 2
	case AuthStatusPhotoStep:
		return 3
	}
	return -1
}

// IdentifierKind is what a free-text identifier was classified as.
type IdentifierKind string

const (
	IdentifierEmail    IdentifierKind = "email"
	IdentifierPhone    IdentifierKind = "phone"
	IdentifierUsername IdentifierKind = "username"
)

// TokenType distinguishes access and refresh tokens signed with the same key.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)
