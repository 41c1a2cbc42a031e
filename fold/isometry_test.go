package fold_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/flatfold/flatfold/fold"
)

func TestIsometry_IdentityIsNoOp(t *testing.T) {
	id := fold.IdentityIsometry()
	p := mgl64.Vec3{1, 2, 3}
	require.InDeltaSlice(t, p[:], id.Apply(p)[:], 1e-9)
}

func TestIsometry_InverseUndoesApply(t *testing.T) {
	rot := fold.AxisAngleQuat(mgl64.Vec3{0, 0, 1}, 1.2345)
	iso := fold.RotateAboutPoint(rot, mgl64.Vec3{1, 1, 0})
	p := mgl64.Vec3{3, -2, 5}
	back := iso.Inverse().Apply(iso.Apply(p))
	require.InDeltaSlice(t, p[:], back[:], 1e-9)
}

func TestIsometry_RotateAboutPointFixesThatPoint(t *testing.T) {
	rot := fold.AxisAngleQuat(mgl64.Vec3{0, 0, 1}, 0.7)
	center := mgl64.Vec3{2, 3, 0}
	iso := fold.RotateAboutPoint(rot, center)
	require.InDeltaSlice(t, center[:], iso.Apply(center)[:], 1e-9)
}

func TestIsometry_ComposeMatchesSequentialApply(t *testing.T) {
	a := fold.RotateAboutPoint(fold.AxisAngleQuat(mgl64.Vec3{0, 0, 1}, 0.3), mgl64.Vec3{0, 0, 0})
	b := fold.RotateAboutPoint(fold.AxisAngleQuat(mgl64.Vec3{1, 0, 0}, 0.5), mgl64.Vec3{1, 0, 0})
	p := mgl64.Vec3{1, 2, 3}

	sequential := b.Apply(a.Apply(p))
	composed := a.Compose(b).Apply(p)
	require.InDeltaSlice(t, sequential[:], composed[:], 1e-9)
}
