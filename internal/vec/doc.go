// Package vec provides the 2D vector type used by bodies and force models.
//
// [Vec2] is a plain value. Methods with a pointer receiver mutate the
// vector in place and return it for chaining:
//
//	b.Velocity.InvertX().Scale(b.Elasticity)
//
// Their value counterparts ([Vec2.Plus], [Vec2.Minus], [Vec2.Scaled],
// [Vec2.Normalized], ...) never modify the receiver or the argument.
//
// # Zero vectors
//
// Normalizing a zero-length vector yields the zero vector instead of
// NaN components. Force models depend on this to leave coincident
// bodies untouched.
package vec
