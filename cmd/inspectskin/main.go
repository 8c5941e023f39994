// inspectskin prints diagnostics for a skin texture: raw dimensions,
// detected model variant, and per-part overlay coverage.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"mc-skin-statue/internal/rig"
	"mc-skin-statue/internal/skin"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspectskin <skin.png | URL | username>")
		os.Exit(1)
	}
	source := flag.Arg(0)

	tex, err := skin.Acquire(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	variant := skin.DetectVariant(tex)
	fmt.Printf("Source:   %s\n", source)
	fmt.Printf("Size:     %dx%d (normalized)\n", tex.Bounds().Dx(), tex.Bounds().Dy())
	fmt.Printf("Variant:  %s\n", variant)

	r, err := rig.New(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nOverlay coverage:")
	for _, part := range r.Parts {
		opaque, total := 0, 0
		for f := rig.FaceTop; f <= rig.FaceBack; f++ {
			rect := part.OverlayUV.Rect(f)
			for dy := 0; dy < rect.H; dy++ {
				for dx := 0; dx < rect.W; dx++ {
					total++
					if alphaAt(tex, rect.U+dx, rect.V+dy) > 0 {
						opaque++
					}
				}
			}
		}
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(opaque) / float64(total)
		}
		fmt.Printf("  %-9s %5.1f%% (%d/%d texels)\n", part.Name, pct, opaque, total)
	}
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)+3]
}
