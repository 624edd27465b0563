package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

const (
	charW = 8
	charH = 16
)

// Recorder rasterizes canvas frames into an animated GIF.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder {
	return &Recorder{frames: make([]*image.Paletted, 0)}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture renders every lit braille dot as a charW/2 × charH/4 block.
func (r *Recorder) Capture(c *Canvas) {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	dw, dh := c.Dots()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save writes the captured frames to path at 50 fps.
func (r *Recorder) Save(path string) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
