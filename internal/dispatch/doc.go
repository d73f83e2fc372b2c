// Package dispatch sends a composed post to social platforms.
//
// Every platform is served by an [Adapter]. Adapters never return errors:
// failures (missing credentials, transport errors, non-2xx responses) are
// reported inside the [Result] so one platform cannot break another.
//
// Three kinds of adapter exist:
//
//   - [Webhook] posts to a Discord webhook over HTTP.
//   - [Simulated] logs the payload it would send and fabricates an id.
//   - [Placeholder] always fails with "not yet implemented".
//
// [New] picks the right one for a platform key, and [PostAll] fans a post
// out to several adapters concurrently, returning results in input order.
package dispatch
