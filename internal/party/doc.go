// Package party computes party codes. The base code is the bitwise AND of the
// selected catalog values, folded left to right; an adjustment rule then maps
// it to a final code and a message. Computation is pure and holds no state, so
// any adapter may call it concurrently.
package party
