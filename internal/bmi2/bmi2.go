// Package bmi2 wraps the BMI2 parallel bit deposit (PDEP) and parallel bit
// extract (PEXT) instructions, with portable fallbacks for platforms that
// lack them.
//
// Pdep scatters the low bits of src into the positions selected by mask;
// Pext gathers the mask-selected bits of src into a contiguous low-order
// run. Both are the exact primitives Morton interleaving needs, with the
// interleave comb as the selector mask.
package bmi2
