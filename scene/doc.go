// Package scene partitions one global application state into
// independently testable scenes and drives them one frame at a time.
//
// Allowed here:
// - the scene capability contract, descriptors, and event filtering
// - registry, navigation state machine, and per-frame dispatch
//
// Not allowed here:
// - rendering, input polling, timing sources, or persistence; those
//   are external collaborators that feed frames in and consume the
//   Render values coming out
package scene
