// Package notepress provides a reusable library for two small content
// applications sharing one access-control model: private notes scoped to
// their owner, and public news items carrying moderated, author-scoped
// comments.
//
// It exposes a single Service interface that orchestrates every mutating
// operation through the same pipeline: authorize the caller, validate the
// submission (slug uniqueness for notes, banned-term moderation for
// comments), then commit. Repository implementations (memory, Postgres) are
// provided under subpackages.
//
// # Access-Control Model
//
// Denials are deliberately asymmetric. An anonymous caller attempting any
// privileged action is told to authenticate; an authenticated caller
// touching somebody else's resource is told the resource does not exist.
// The second answer is byte-identical to a genuinely missing resource, so
// non-owners can never confirm that a note or comment exists.
package notepress
