// Package pixcore implements the bit-packed raster container at the heart
// of a document-image processing pipeline: a polymorphic pixel grid
// supporting 1/2/4/8/16/32 bits per pixel with a shared packed-word
// storage model, an optional indexed-color palette (see the colormap
// package), and an ownership-safe mutable/immutable view split.
//
// Higher-level algorithms — structuring elements and binary morphology
// (sel, morph, morph/dwa), grayscale morphology (gray), connected
// components and border tracing (region), seeded fill and reconstruction
// (fill), and quadtree statistics (quadtree) — are implemented as sibling
// packages built on top of Raster.
//
// Rasters are immutable once constructed; obtaining write access goes
// through View, which enforces that at most one mutable view of a given
// buffer exists at a time.
package pixcore
