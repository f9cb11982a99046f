package mat

// Scalar is a fixed-length numeric tuple used for per-channel constants.
// Components are kept in double precision regardless of the target matrix
// depth; narrowing to the element depth happens at the point of the write.
type Scalar [ScalarChannels]float64

// NewScalar builds a Scalar from up to four components. Missing components
// are zero; extra components are ignored.
func NewScalar(vs ...float64) Scalar {
	var s Scalar
	for i, v := range vs {
		if i >= ScalarChannels {
			break
		}
		s[i] = v
	}
	return s
}

// ScalarAll returns a Scalar with every component set to v.
func ScalarAll(v float64) Scalar {
	return Scalar{v, v, v, v}
}

// Equal reports component-wise equality.
func (s Scalar) Equal(other Scalar) bool {
	return s == other
}
