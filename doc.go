// Package themesync synchronizes color tokens from a Figma design file
// into CSS custom properties.
//
// The pipeline fetches a document tree via the Figma API (or loads a local
// snapshot), walks it along a fixed named path (Content -> group ->
// Palette -> rectangle swatches), converts each swatch's first fill color
// from unit-interval floats to a 0-255 "R G B" triplet, and writes the
// result through a style sink as --<group>-<swatch> custom properties.
//
// The CLI lives in cmd/figma-theme-sync; this root package exposes the
// same pipeline as a Go API so that callers can embed the sync in their
// own build tooling without shelling out.
//
// # Quick start
//
//	sink, err := cssvar.OpenStylesheet("theme.css")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := themesync.Run(themesync.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    Sink:        sink,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("synced %d tokens from %s\n", len(result.Tokens), result.FileName)
//
// Stylesheets then consume the variables via rgb():
//
//	color: rgb(var(--colors-Blue-500));
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Structure tolerance
//
// Lookup misses are not errors: a tree without a Content or Palette child
// at the expected level simply contributes no tokens, and swatches without
// a resolvable fill color are skipped. Only the network fetch can fail a
// sync pass.
//
// # Stale variables
//
// The stylesheet sink merges into the existing :root block, so variables
// from swatches that were removed from the design file are kept until the
// stylesheet is deleted. The token set is accretive by design.
package themesync
