// Package topology computes size and shape figures for a configured
// convolutional encoder: per-block and total weight counts, convolution
// counts, and the receptive field implied by the layer list. It is pure
// arithmetic over the configuration; it never builds a network.
package topology
