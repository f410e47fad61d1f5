package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a client-generated UUID identifying each
// outbound request, for server-side correlation.
const RequestIDHeaderName = "X-Request-Id"
