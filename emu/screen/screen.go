package screen

import (
	"fmt"
	"image"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// Window presents the machine's framebuffer and captures its key presses.
// It must be created and used on the main thread, inside pixelgl.Run.
type Window struct {
	*pixelgl.Window
	KeyMap [16]pixelgl.Button
	scale  float64
}

// NewWindow opens a window sized to the CHIP-8 screen times scale.
func NewWindow(title string, scale float64) (*Window, error) {
	if scale < 1 {
		scale = 1
	}

	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, cpu.Width*scale, cpu.Height*scale),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.SetSmooth(false)

	return &Window{
		Window: win,
		KeyMap: DefaultKeyMap,
		scale:  scale,
	}, nil
}

// QuitRequested is true once the window was closed or Escape was pressed.
func (w *Window) QuitRequested() bool {
	return w.Closed() || w.JustPressed(pixelgl.KeyEscape)
}

// PollKeys copies the current state of every mapped key to k.
func (w *Window) PollKeys(k KeySetter) error {
	for key, button := range w.KeyMap {
		if err := k.SetKey(key, w.Pressed(button)); err != nil {
			return err
		}
	}
	return nil
}

// Draw paints a framebuffer as exported by cpu.EMU.Framebuffer and updates
// the window.
func (w *Window) Draw(fb []byte) {
	pic := pixel.PictureDataFromImage(FrameImage(fb))
	sprite := pixel.NewSprite(pic, pic.Bounds())

	w.Clear(colornames.Black)
	center := w.Bounds().Center()
	sprite.Draw(w, pixel.IM.Moved(center).Scaled(center, w.scale))
	w.Update()
}

// FrameImage wraps an RGBA framebuffer in an image without copying it.
func FrameImage(fb []byte) *image.RGBA {
	return &image.RGBA{
		Pix:    fb,
		Stride: 4 * cpu.Width,
		Rect:   image.Rect(0, 0, cpu.Width, cpu.Height),
	}
}
