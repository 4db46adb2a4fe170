// Package routes maps every backend endpoint to its request path. The base
// URL is supplied by the API client; these builders produce the part after
// it, with all path parameters escaped.
package routes

const (
	Login    = "/auth/login"
	Register = "/auth/register"
)
