package display

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// OLED renders snapshots to the SSD1306 over I2C. Each cycle the full frame
// is composed into an off-screen buffer and committed with a single Draw, so
// the fields never flicker independently.
type OLED struct {
	dev *ssd1306.Dev
	log zerolog.Logger
}

// NewOLED initializes the SSD1306 on the given bus and shows the splash
// screen.
func NewOLED(bus i2c.Bus, log zerolog.Logger) (*OLED, error) {
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize display: %w", err)
	}

	o := &OLED{dev: dev, log: log}
	if err := o.splash(); err != nil {
		log.Warn().Err(err).Msg("error showing splash screen")
	}
	return o, nil
}

// Render draws the snapshot. Errors are logged, never surfaced.
func (o *OLED) Render(snap Snapshot) {
	lines := frameLines(snap)
	if err := o.draw(lines[:], 0); err != nil {
		o.log.Warn().Err(err).Msg("error updating display")
	}
}

func (o *OLED) splash() error {
	return o.draw([]string{"Light Monitor", "", "waiting for", "first reading"}, 10)
}

func (o *OLED) draw(lines []string, indent int) error {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))

	// Blank image
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		drawer.Dot = fixed.P(indent, 13*(i+1))
		drawer.DrawBytes([]byte(line))
	}

	return o.dev.Draw(o.dev.Bounds(), img, image.Point{})
}
