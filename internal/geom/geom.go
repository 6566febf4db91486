package geom

// Vec3 is a position or offset in world space, metres.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp interpolates from a to b, t clamped to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(b.Sub(a).Scale(t))
}

// Quat is an orientation quaternion. Orientations are carried as-is from the
// detection source, never averaged.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the no-rotation orientation.
var Identity = Quat{W: 1}

// Pose is a detected or derived placement in world space.
type Pose struct {
	Position    Vec3
	Orientation Quat
}
