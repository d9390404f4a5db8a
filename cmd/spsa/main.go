// Command spsa previews the sprite sheets of one companion variant. It loads
// the sheets with the same loader the companion uses, prints the inferred
// frame layout and plays each animation.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/follower/assets"
	"github.com/milk9111/follower/render"
	"github.com/milk9111/follower/variant"
)

const (
	previewSize = 512
	// ticksPerFrame at 60 TPS gives roughly 10 frames per second.
	ticksPerFrame = 6
)

type previewGame struct {
	v       variant.Variant
	sprites *render.SpriteSet
	names   []string
	drawer  *render.Drawer

	current int
	tick    int
	column  int
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.current = (g.current + 1) % len(g.names)
		g.tick, g.column = 0, 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.current = (g.current + len(g.names) - 1) % len(g.names)
		g.tick, g.column = 0, 0
	}

	g.tick++
	if g.tick >= ticksPerFrame {
		g.tick = 0
		g.column++
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})

	name := g.names[g.current]
	sheet, _ := g.sprites.Get(name)
	column := g.column % sheet.Frames
	scale := g.v.DisplayHeight / sheet.FrameHeight
	w := sheet.FrameWidth * scale
	h := sheet.FrameHeight * scale

	g.drawer.Draw(screen, render.Frame{
		Sprite: name,
		Sheet:  sheet,
		Column: column,
		Scale:  scale,
		Width:  w,
		Height: h,
		Left:   (previewSize - w) / 2,
		Top:    (previewSize - h) / 2,
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s / %s  frame %d/%d  (%.0fx%.0f)\n<- -> to switch, Esc to quit",
		g.v.DisplayName, name, column+1, sheet.Frames, sheet.FrameWidth, sheet.FrameHeight))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func printSheets(v variant.Variant, sprites *render.SpriteSet) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ANIMATION\tSHEET\tFRAMES\tFRAME SIZE\tSCALE\n")
	for _, name := range sprites.Names() {
		sheet, _ := sprites.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.0fx%.0f\t%.2f\n",
			name, sheet.URL, sheet.Frames, sheet.FrameWidth, sheet.FrameHeight, v.DisplayHeight/sheet.FrameHeight)
	}
	tw.Flush()
}

func main() {
	id := flag.String("variant", variant.DefaultKey, "variant key to preview")
	root := flag.String("assets", ".", "directory sprite sheets are read from")
	list := flag.Bool("list", false, "print the sheet table and exit")
	flag.Parse()

	catalog, err := variant.LoadCatalog()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	v, err := catalog.Resolve(*id)
	if err != nil {
		log.Fatal(err)
	}

	loader := render.NewLoader(assets.NewSource(*root), nil, log.Default())
	sprites := loader.Load(context.Background(), v.SpriteSources())
	if sprites.Len() == 0 {
		log.Fatalf("no sheets loaded for %s", v.Key)
	}
	printSheets(v, sprites)
	if *list {
		return
	}

	g := &previewGame{v: v, sprites: sprites, names: sprites.Names(), drawer: render.NewDrawer()}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sheet preview: " + v.DisplayName)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
