package film

// Matrix22 is a 2×2 matrix of complex entries — the characteristic
// (transfer) matrix of an optical element. Chaining elements is matrix
// multiplication; the identity matrix is "no element at all".
//
// Matrix22 is a plain value: operations return new matrices and never
// mutate their operands. Entries are not normalized — for strongly
// absorbing or very deep stacks they can grow large, which is an accepted
// property of the method, not something Mul compensates for.
//
//	( M11   M12 )
//	( M21   M22 )
type Matrix22 struct {
	M11, M12, M21, M22 complex128
}

// Identity returns the 2×2 identity matrix: the characteristic matrix of
// free propagation with zero optical effect. It is a left and right
// neutral element of Mul.
func Identity() Matrix22 {
	return Matrix22{M11: 1, M22: 1}
}

// Mul returns the matrix product m·b: propagate through the element
// represented by b after having propagated through m. Multiplication is
// associative but not commutative — stack order matters.
func (m Matrix22) Mul(b Matrix22) Matrix22 {
	return Matrix22{
		M11: m.M11*b.M11 + m.M12*b.M21,
		M12: m.M11*b.M12 + m.M12*b.M22,
		M21: m.M21*b.M11 + m.M22*b.M21,
		M22: m.M21*b.M12 + m.M22*b.M22,
	}
}
