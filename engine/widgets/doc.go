// Package widgets builds common controls on top of gui nodes.
//
// Every widget must be called in both passes of a frame with the same
// arguments. Widgets attribute their nodes to the line that called them,
// so two widgets on one line need WithID to stay distinct. Interaction
// results are only reported during the Render pass.
package widgets
