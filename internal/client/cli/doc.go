// Package cli provides the line-oriented activities client.
//
// It wraps a controller.Controller in a small REPL for terminals that cannot
// host the full-screen UI, or for scripted use. Every UI intent has a
// command:
//   - list                         show the activity board
//   - login / logout               start or end a teacher session
//   - signup [activity | email]    register a student
//   - unregister [activity | email]
//   - remove <n>                   unregister participant row n of the last list
//   - menu                         toggle the user menu
//   - refresh                      re-read session and catalog
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
