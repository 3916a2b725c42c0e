// Package notify provides an HTTP implementation of domain.Notifier.
//
// After a draw, each giver's assignment can be pushed to a webhook so a mail
// or chat bridge can deliver it privately. Every pairing is POSTed as JSON to
//
//	{base}/notify/{giver_email}
//
// Requests accept a context for cancellation and deadlines. Non-2xx statuses
// are returned as errors with the HTTP method, full URL and status text.
package notify
