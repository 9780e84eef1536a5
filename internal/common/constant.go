package common

// AccessTokenHeaderName is the HTTP header carrying the signed access token
// on protected requests.
const AccessTokenHeaderName = "x-access-token"

// RequestIDHeaderName is echoed back on every response so a client can quote
// it when reporting a failed request.
const RequestIDHeaderName = "X-Request-ID"
