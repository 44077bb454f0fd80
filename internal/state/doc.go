// Package state contains the transactional, observable store core shared by
// every application container in this repository.
//
// Allowed here:
// - the generic store core (snapshot/restore hooks, commit, async commit)
// - observer contracts and registration
// - transaction plans and the serial async runner
// - the error taxonomy and the store error precedence rule
//
// Not allowed here:
// - application state shapes (counts, to-do items) or their operations
// - presentation, key handling, or any terminal rendering
package state
