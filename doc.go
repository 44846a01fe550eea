// mtxt is a package for laying out text on small pixel displays, like
// LED matrices, using bitmap fonts.
//
// The layout happens in two steps:
//  - [BreakLines]() splits the text into lines that fit a maximum width,
//    honoring explicit line breaks and wrapping greedily at whitespace.
//  - [MapGlyphs]() stacks the lines into a block, aligns it within the
//    canvas and returns the absolute position of every code point.
//
// Most of the time you will use [Layout](), which does both at once:
//   face := font.Basic() // any mtxt.Metrics implementation works
//   config := mtxt.Config{ Width: 64, Height: 32, Align: mtxt.Center }
//   placements, err := mtxt.Layout("HELLO, MATRIX!", face, config)
//   if err != nil { panic(err) }
//   for _, placement := range placements {
//       display.DrawText(placement.CodePoint, placement.X, placement.Y)
//   }
//
// Layout functions are pure: they don't keep any state between calls,
// so re-running them every time the text, font or alignment changes is
// both cheap and safe.
//
// Font backends live in the mtxt/font package, and a virtual LED matrix
// that can draw the resulting placements lives in mtxt/matrix.
package mtxt
