// Package batch applies element algebra operations across slices, picking
// between an unrolled lane-oriented kernel and a plain scalar kernel from
// the CPU features detected at startup.
//
// Path selection is semantically transparent: both kernels run the same
// component arithmetic in the same order, so the selected path never
// changes a result. The lane widths match how many elements of each
// algebra fit a 256-bit vector register: four Gaussian integers, two
// quaternions, one octonion. Lane kernels consume whole lanes and hand
// the tail to the scalar kernel.
//
// Multiplication is the exception: it can fail per element, so it always
// runs the scalar kernel and stops at the first overflow.
package batch
