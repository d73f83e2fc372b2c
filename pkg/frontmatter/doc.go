// Package frontmatter splits a Markdown document into a YAML header and a body.
//
// Drafts written in Markdown carry their metadata (target platforms, title,
// attachments) between two lines containing only "---"; everything after the
// closing delimiter is the post text.
//
//	---
//	platforms: [twitter, bluesky]
//	image: [launch.png]
//	---
//	We just shipped!
//
// Both LF and CRLF line endings are accepted.
package frontmatter
