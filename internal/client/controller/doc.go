// Package controller is the action controller of the activities client.
//
// State is the one application-state object: session, catalog, select
// options, the notification surface, and the visibility of the user menu,
// login modal and form fields. Front-ends write the form fields as the user
// types; every other change goes through the transitions below. Renderers
// take it as read-only input.
//
// The package splits work in two:
//
//   - transitions (methods on *State) are pure and apply a result to state;
//   - Effects perform the network calls and return results without touching
//     state.
//
// Controller glues the two together for a sequential front-end. An
// event-loop front-end can run Effects asynchronously and feed the results
// to the same transitions instead. In both cases every successful mutation
// yields a services.Refresh which a single handler turns into re-fetches,
// auth first, then activities. Overlapping requests are not serialised:
// whichever refresh resolves last wins, because each one replaces state
// wholesale.
package controller
