// Package quaternion implements quaternions over float kinds, stored as a
// matrix.Vector4 in (w, x, y, z) order, i.e. w + xi + yj + zk.
//
// What & Why:
//
//	Unit quaternions encode 3-D rotations without gimbal lock and compose by
//	multiplication. FromAxisAngle takes its angle as a typed
//	units.QuantityOf[units.Angle, T], so degrees, gons and revolutions
//	convert to radians on the way in and a length cannot be passed by
//	mistake.
//
// Behavior highlights:
//   - Values are immutable: every operation returns a new Quaternion.
//   - Mul is the Hamilton product (non-commutative).
//   - Inverted is Conjugated / SquareNorm, so it also serves non-unit values.
//   - ToRotationMatrix requires a unit quaternion within the configured
//     tolerance (DefaultTolerance unless WithTolerance) and returns
//     ErrNotUnit otherwise.
//
// Complexity:
//
//	Every operation is O(1).
package quaternion
