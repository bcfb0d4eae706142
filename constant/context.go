package constant

type contextKey string

// AccountIDKey holds the id of the account authenticated by the access token.
const AccountIDKey contextKey = "account_id"
