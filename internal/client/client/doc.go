// Package client is the transport to the activities API.
//
// # Overview
//
// The Client interface lists the six calls the front-end makes:
// AuthStatus, Activities, Login, Logout, Signup and Unregister. HTTPClient
// implements it over HTTP/JSON with a cookie jar, so the server's session
// cookie set by Login is replayed on later calls for the life of the process.
//
// # Replies
//
// Mutating calls return a Reply whatever the HTTP status: the body is parsed
// as JSON regardless, and callers decide what a non-2xx means. Only failures
// below that level surface as errors.
//
// # Error Handling
//
// Sentinel errors for errors.Is: ErrUnavailable (request never produced a
// response), ErrMalformedResponse (body is not the expected JSON) and
// ErrUnexpectedStatus (a read endpoint answered non-2xx).
package client
