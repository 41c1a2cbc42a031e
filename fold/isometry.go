package fold

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// IsometryAngleEpsilon is the largest rotation-angle discrepancy (in
	// radians) tolerated between two isometries computed for the same
	// face before they're considered distinct.
	IsometryAngleEpsilon = 0.001
	// IsometryLengthEpsilonSq is the largest squared translation
	// discrepancy tolerated between two isometries computed for the
	// same face before they're considered distinct.
	IsometryLengthEpsilonSq = 0.001
	// PlaneDistanceEpsilon is the distance (in model units) within which
	// a point is considered to lie in a plane.
	PlaneDistanceEpsilon = 0.001
	// FaceShrinkEpsilon is how far each face vertex is nudged towards
	// its centroid before intersection testing, to avoid false
	// positives at shared edges.
	FaceShrinkEpsilon = 0.0001
)

// Options carries tunable epsilons for isometry-consistency and plane
// checks, set via the With* functional options below.
type Options struct {
	isoAngleEpsilon   float64
	isoLengthEpsSq    float64
	planeEpsilon      float64
	faceShrinkEpsilon float64
	checkEdgeLengths  bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the epsilon values used throughout the package
// unless overridden.
func DefaultOptions() Options {
	return Options{
		isoAngleEpsilon:   IsometryAngleEpsilon,
		isoLengthEpsSq:    IsometryLengthEpsilonSq,
		planeEpsilon:      PlaneDistanceEpsilon,
		faceShrinkEpsilon: FaceShrinkEpsilon,
	}
}

// WithIsometryEpsilon overrides the rotation-angle and squared-translation
// thresholds used when comparing two isometries assigned to the same face.
func WithIsometryEpsilon(angle, lengthSq float64) Option {
	return func(o *Options) {
		o.isoAngleEpsilon = angle
		o.isoLengthEpsSq = lengthSq
	}
}

// WithPlaneEpsilon overrides the plane-membership distance threshold.
func WithPlaneEpsilon(eps float64) Option {
	return func(o *Options) {
		o.planeEpsilon = eps
	}
}

// WithFaceShrinkEpsilon overrides the face-shrink distance used by
// ShrunkFacesCoords.
func WithFaceShrinkEpsilon(eps float64) Option {
	return func(o *Options) {
		o.faceShrinkEpsilon = eps
	}
}

// WithLengthCheck enables a soft consistency check of a FOLD frame's
// edges_length field (when present) against the Euclidean length implied
// by vertices_coords, surfacing a disagreement as ErrFoldBadCoordinates.
// This is not part of the core ingest contract, since edges_length is
// redundant with vertices_coords, but catches malformed input early.
func WithLengthCheck(enabled bool) Option {
	return func(o *Options) {
		o.checkEdgeLengths = enabled
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Isometry3 is a rigid motion of 3-space: rotate by Rot, then translate
// by Trans.
type Isometry3 struct {
	Rot   mgl64.Quat
	Trans mgl64.Vec3
}

// IdentityIsometry returns the identity rigid motion.
func IdentityIsometry() Isometry3 {
	return Isometry3{Rot: mgl64.QuatIdent()}
}

// Apply transforms p by the isometry: rotate then translate.
func (iso Isometry3) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rot.Rotate(p).Add(iso.Trans)
}

// Compose returns the isometry equivalent to applying iso first, then other:
// other.Apply(iso.Apply(p)) == iso.Compose(other).Apply(p).
func (iso Isometry3) Compose(other Isometry3) Isometry3 {
	return Isometry3{
		Rot:   other.Rot.Mul(iso.Rot),
		Trans: other.Rot.Rotate(iso.Trans).Add(other.Trans),
	}
}

// Inverse returns the isometry that undoes iso.
func (iso Isometry3) Inverse() Isometry3 {
	rInv := iso.Rot.Inverse()

	return Isometry3{
		Rot:   rInv,
		Trans: rInv.Rotate(iso.Trans.Mul(-1)),
	}
}

// RotateAboutPoint returns the isometry that rotates by r around the
// fixed point p: translate -p, rotate, translate +p.
func RotateAboutPoint(r mgl64.Quat, p mgl64.Vec3) Isometry3 {
	return Isometry3{
		Rot:   r,
		Trans: p.Sub(r.Rotate(p)),
	}
}

// AxisAngleQuat builds the quaternion rotating by angleRad radians around
// axis (which need not be normalized).
func AxisAngleQuat(axis mgl64.Vec3, angleRad float64) mgl64.Quat {
	n := axis.Len()
	if n == 0 {
		return mgl64.QuatIdent()
	}

	return mgl64.QuatRotate(angleRad, axis.Mul(1/n))
}

// RotationAngle returns the rotation angle (radians, in [0, pi]) of iso's
// rotation component.
func (iso Isometry3) RotationAngle() float64 {
	w := iso.Rot.W
	if w > 1 {
		w = 1
	}
	if w < -1 {
		w = -1
	}

	return 2 * math.Acos(math.Abs(w))
}
