// Package physics implements the force models and integration step of
// the sandbox.
//
// An [Engine] wraps one [ForceModel] chosen at construction:
//
//   - [UniformField]: constant downward acceleration with walls that
//     respect the body's shape extent ("earth")
//   - [PairwiseGravity]: softened O(n²) Newtonian gravity ("space")
//   - [GroupedAttraction]: per-group attraction rules with a fixed
//     interaction radius ("particle")
//   - [ApproxGravity]: Barnes–Hut approximation of PairwiseGravity
//     ("space-bh")
//
// Each call to [Engine.Step] applies forces to velocities, advances
// positions by the same dt and clamps bodies against the scene walls.
// The engine keeps no per-body state between calls, so the caller may
// add or remove bodies between steps.
//
// # Debug records
//
// When [Context.Debug] is set and a [DebugSink] is supplied, pairwise
// models report every evaluated pair as a [DebugLine] in evaluation
// order (0,1), (0,2), ..., (1,2), ...
//
// # Known gaps
//
// Bodies never collide with each other, and a body moving far enough in
// one step can pass a wall before being clamped back onto it.
package physics
