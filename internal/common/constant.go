package common

// AuthorizationHeaderName is the HTTP header / gRPC metadata key that
// carries the bearer credential on inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix is the expected scheme in the authorization header.
const BearerSchemePrefix = "Bearer"
