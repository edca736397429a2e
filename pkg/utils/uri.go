package utils

import (
	"strings"

	"github.com/oarkflow/signup/pkg/objects"
)

var (
	HealthURI       = "/health"
	LoginURI        = "/login"
	SignupURI       = "/signup"
	TermsAcceptURI  = "/signup/terms/accept"
	TermsDeclineURI = "/signup/terms/decline"
)

var (
	SignupTemplate = "signup/register"
	LoginTemplate  = "signup/login"
	ErrorTemplate  = "signup/error"
)

// Path mounts uri under the prefix the routes were registered with.
func Path(uri string) string {
	return strings.TrimRight(objects.Prefix, "/") + uri
}

func GetURIs() map[string]string {
	return map[string]string{
		"Health":       Path(HealthURI),
		"Login":        Path(LoginURI),
		"Signup":       Path(SignupURI),
		"TermsAccept":  Path(TermsAcceptURI),
		"TermsDecline": Path(TermsDeclineURI),
	}
}
