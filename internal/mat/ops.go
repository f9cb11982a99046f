package mat

// The bulk numeric kernels. Operand validation and output allocation happen
// in the operation entry points (arith.go, bitwise.go, convert.go); kernels
// assume compatible geometry and only move data. All kernels write results
// with saturation, the wrapped library's bulk-operation contract.

// binaryMatKernel computes dst = fn(a, b) component-wise. dst may alias a
// for the in-place variants: every component is read before it is written.
func binaryMatKernel(dst, a, b *Mat, fn func(x, y float64) float64) {
	k := kinds[a.elemType.Depth]
	kd := kinds[dst.elemType.Depth]
	esz := a.elemType.ElemSize1()
	dsz := dst.elemType.ElemSize1()
	n := a.cols * a.elemType.Channels
	for r := 0; r < a.rows; r++ {
		ra, rb, rd := a.RowBytes(r), b.RowBytes(r), dst.RowBytes(r)
		for i := 0; i < n; i++ {
			kd.writeSat(rd[i*dsz:], fn(k.read(ra[i*esz:]), k.read(rb[i*esz:])))
		}
	}
}

// binaryScalarKernel computes dst = fn(a, s[channel]) component-wise.
// Channels beyond the scalar's four components use zero.
func binaryScalarKernel(dst, a *Mat, s Scalar, fn func(x, y float64) float64) {
	k := kinds[a.elemType.Depth]
	esz := a.elemType.ElemSize1()
	ch := a.elemType.Channels
	for r := 0; r < a.rows; r++ {
		ra, rd := a.RowBytes(r), dst.RowBytes(r)
		for c := 0; c < a.cols; c++ {
			for j := 0; j < ch; j++ {
				var sv float64
				if j < ScalarChannels {
					sv = s[j]
				}
				i := c*ch + j
				k.writeSat(rd[i*esz:], fn(k.read(ra[i*esz:]), sv))
			}
		}
	}
}

// byteOp is a bitwise kernel primitive applied to the raw element bytes.
type byteOp func(x, y byte) byte

func andBytes(x, y byte) byte { return x & y }
func orBytes(x, y byte) byte  { return x | y }
func xorBytes(x, y byte) byte { return x ^ y }

// maskedAt reports whether element (r, c) passes the mask. A nil mask
// passes everything.
func maskedAt(mask *Mat, r, c int) bool {
	if mask == nil {
		return true
	}
	return mask.RowBytes(r)[c] != 0
}

// bitwiseMatKernel applies op to the raw bytes of a and b. Elements the mask
// rejects keep dst's prior value (zero for a fresh output).
func bitwiseMatKernel(dst, a, b, mask *Mat, op byteOp) {
	esz := a.elemType.ElemSize()
	for r := 0; r < a.rows; r++ {
		ra, rb, rd := a.RowBytes(r), b.RowBytes(r), dst.RowBytes(r)
		for c := 0; c < a.cols; c++ {
			if !maskedAt(mask, r, c) {
				continue
			}
			for i := c * esz; i < (c+1)*esz; i++ {
				rd[i] = op(ra[i], rb[i])
			}
		}
	}
}

// bitwiseScalarKernel applies op between a's raw element bytes and the
// pre-converted scalar element sv (len == elemSize).
func bitwiseScalarKernel(dst, a *Mat, sv []byte, mask *Mat, op byteOp) {
	esz := a.elemType.ElemSize()
	for r := 0; r < a.rows; r++ {
		ra, rd := a.RowBytes(r), dst.RowBytes(r)
		for c := 0; c < a.cols; c++ {
			if !maskedAt(mask, r, c) {
				continue
			}
			for i := 0; i < esz; i++ {
				rd[c*esz+i] = op(ra[c*esz+i], sv[i])
			}
		}
	}
}

// bitwiseNotKernel inverts every bit of a's elements that pass the mask.
func bitwiseNotKernel(dst, a, mask *Mat) {
	esz := a.elemType.ElemSize()
	for r := 0; r < a.rows; r++ {
		ra, rd := a.RowBytes(r), dst.RowBytes(r)
		for c := 0; c < a.cols; c++ {
			if !maskedAt(mask, r, c) {
				continue
			}
			for i := c * esz; i < (c+1)*esz; i++ {
				rd[i] = ^ra[i]
			}
		}
	}
}

// convertKernel computes dst = a*alpha + beta component-wise, taking the
// absolute value first when abs is set, saturating to dst's depth.
func convertKernel(dst, a *Mat, alpha, beta float64, abs bool) {
	ka := kinds[a.elemType.Depth]
	kd := kinds[dst.elemType.Depth]
	asz := a.elemType.ElemSize1()
	dsz := dst.elemType.ElemSize1()
	n := a.cols * a.elemType.Channels
	for r := 0; r < a.rows; r++ {
		ra, rd := a.RowBytes(r), dst.RowBytes(r)
		for i := 0; i < n; i++ {
			v := ka.read(ra[i*asz:])*alpha + beta
			if abs && v < 0 {
				v = -v
			}
			kd.writeSat(rd[i*dsz:], v)
		}
	}
}

// weightedKernel computes dst = a*alpha + b*beta + gamma component-wise.
func weightedKernel(dst, a, b *Mat, alpha, beta, gamma float64) {
	ka := kinds[a.elemType.Depth]
	kb := kinds[b.elemType.Depth]
	kd := kinds[dst.elemType.Depth]
	asz := a.elemType.ElemSize1()
	bsz := b.elemType.ElemSize1()
	dsz := dst.elemType.ElemSize1()
	n := a.cols * a.elemType.Channels
	for r := 0; r < a.rows; r++ {
		ra, rb, rd := a.RowBytes(r), b.RowBytes(r), dst.RowBytes(r)
		for i := 0; i < n; i++ {
			v := ka.read(ra[i*asz:])*alpha + kb.read(rb[i*bsz:])*beta + gamma
			kd.writeSat(rd[i*dsz:], v)
		}
	}
}

// fillKernel writes the scalar into every element that passes the mask.
func fillKernel(m *Mat, s Scalar, mask *Mat) {
	k := kinds[m.elemType.Depth]
	esz := m.elemType.ElemSize1()
	ch := m.elemType.Channels
	for r := 0; r < m.rows; r++ {
		row := m.RowBytes(r)
		for c := 0; c < m.cols; c++ {
			if !maskedAt(mask, r, c) {
				continue
			}
			for j := 0; j < ch; j++ {
				var sv float64
				if j < ScalarChannels {
					sv = s[j]
				}
				k.writeSat(row[(c*ch+j)*esz:], sv)
			}
		}
	}
}
