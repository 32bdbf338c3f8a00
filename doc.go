// Package mytrix is a small typed linear-algebra library for the
// mathematical user: matrices and vectors over distinct scalar domains.
//
// What is in the box:
//
//	scalar/      domain descriptors (Boolean, Integer, Real; Rational and
//	             Complex reserved) and the shared error taxonomy
//	matrix/      dense row-major Dense[T] matrices: factories, bounds-checked
//	             access, structural and element-wise equality
//	vector/      dense Dense[T] vectors mirroring matrix
//	cmd/mytrix   inspect/compare/generate YAML or JSON documents
//
// Every container has exactly one domain, fixed at construction. Typed code
// gets that guarantee from the compiler (matrix.Dense[int] only holds int);
// dynamic code (matrix.Infer, matrix.FromRowsOf) gets it from fail-fast
// runtime checks that never widen a bool into an int or an int into a real.
//
// Quick example:
//
//	I, _ := matrix.Identity[bool](2)
//	Z, _ := matrix.Zeros[int](2, 2)
//	I.Equal(Z) // false: different domains, whatever the values
//
//	go get github.com/katalvlaran/mytrix
package mytrix
