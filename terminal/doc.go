// Package terminal draws a heartfield simulation in a terminal with tcell.
//
// Each character cell covers CellWidth×CellHeight logical pixels and is
// split into two half-block pixels, so the simulation keeps its pixel-based
// constants. Mouse motion is reported per cell; a critically damped spring
// smooths the pointer between cell jumps so repulsion follows the mouse
// continuously.
package terminal
