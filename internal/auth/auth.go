// Package auth extracts and syntax-checks the intranet autologin credential.
//
// The credential is an opaque bearer value: syntax is validated here, but its
// authority is only established by whether the portal accepts it on each
// forwarded call.
package auth

import (
	"net/http"
	"regexp"
)

// Header is the inbound header carrying the autologin credential.
const Header = "autologin"

var credentialRx = regexp.MustCompile(`^[a-z0-9]{40}$`)

// FromHeader reads the autologin credential from the request. The second
// return value is false when the header is absent.
func FromHeader(r *http.Request) (string, bool) {
	cred := r.Header.Get(Header)
	return cred, cred != ""
}

// Valid reports whether a credential is syntactically well-formed
// (40 lowercase alphanumeric characters). This bounds the cost of malformed
// input to one regex evaluation before any network call is made.
func Valid(cred string) bool {
	return credentialRx.MatchString(cred)
}
