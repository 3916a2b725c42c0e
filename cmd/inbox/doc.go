// Package main runs an in-memory HTTP inbox for trying out draw
// notifications locally. Point `secretsanta draw --notify-url` at it.
//
// HTTP API
//
//	POST /notify/{email}
//	    Store a notification (notify.Message JSON) for {email}.
//
//	GET /notify/{email}
//	    Return every notification stored for {email}, oldest first.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - The listen address defaults to :8080 and can be changed with -addr.
package main
