package common

// AuthorizationHeaderName is the gRPC metadata key carrying the session
// token as "Bearer <token>".
const AuthorizationHeaderName = "authorization"

// BearerScheme is the authorization scheme accepted by the access gate.
const BearerScheme = "Bearer"

// DefaultRole is assigned to every registered user.
const DefaultRole = "user"

// RequestIDHeaderName is the gRPC metadata key carrying the request id. The
// server echoes it back in the response header, generating one if absent.
const RequestIDHeaderName = "x-request-id"
