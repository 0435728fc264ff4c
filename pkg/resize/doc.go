// Package resize runs the img-resize pipeline: decode the source image,
// resolve the target size from the fit and output scales, allocate a
// transparent canvas, tile the source across it and save the result.
//
// Stages run in order through rop.Chain; the first failing stage stops the
// run and its error is returned tagged with the stage name (load, resolve,
// allocate, repeat, save). Nothing is written unless every earlier stage
// succeeded, and the save itself is atomic.
package resize
