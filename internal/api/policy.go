package api

// writePolicy maps each resource to whether its mutating operations
// (create, update, delete) require an authenticated session. Reads are
// always public. Every resource is gated; the table exists so the router
// consults data rather than scattering per-route decisions.
var writePolicy = map[string]bool{
	"users":    true,
	"events":   true,
	"tickets":  true,
	"speakers": true,
	"venues":   true,
}
