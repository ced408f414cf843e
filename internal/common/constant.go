// Package common contains shared constants and sentinel errors used across
// CodeRefine components.
package common

// AccessTokenHeaderName is the HTTP header carrying the bearer access token
// on authenticated API requests.
const AccessTokenHeaderName = "Authorization"
