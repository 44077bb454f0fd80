// Package tui contains the Bubble Tea front-ends for the three demo apps.
//
// Allowed here:
// - key handling, styling, and view rendering
// - forwarding snapshots and refresh signals into the program queue
// - turning key presses into dispatcher intents
//
// Not allowed here:
// - state mutation outside a dispatched intent
// - holding list or counter state the store already owns
package tui
