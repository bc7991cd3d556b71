package profile

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"novabot/bot/common"
)

// CardStyle defines the visual style of the profile card
type CardStyle struct {
	Width      int
	Height     int
	Padding    int
	BarHeight  int
	AccentRGB  [3]float64
	BarBG      [4]float64
	BarFill    [3]float64
}

// CardRenderer renders profile cards as PNG images
type CardRenderer struct {
	style CardStyle
}

// NewCardRenderer creates a new card renderer with default style
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{
		style: CardStyle{
			Width:     380,
			Height:    150,
			Padding:   15,
			BarHeight: 14,
			AccentRGB: [3]float64{0.72, 0.45, 0.9},
			BarBG:     [4]float64{0.25, 0.25, 0.35, 0.6},
			BarFill:   [3]float64{0.6, 0.4, 0.95},
		},
	}
}

// Render draws the level progress card for a user
func (r *CardRenderer) Render(data *ProfileData) (*bytes.Buffer, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			Debug("Profile card generation completed")
	}()

	dc := gg.NewContext(r.style.Width, r.style.Height)
	dc.SetFillRule(gg.FillRuleWinding)

	// Gradient background with subtle texture
	for i := 0; i < r.style.Height; i++ {
		t := float64(i) / float64(r.style.Height)
		baseR := 0.03 + t*0.04
		baseG := 0.02 + t*0.03
		baseB := 0.06 + t*0.1
		for x := 0; x < r.style.Width; x++ {
			noise := (float64((x*i)%7) - 3.5) / 255.0
			dc.SetRGB(baseR+noise, baseG+noise, baseB+noise)
			dc.SetPixel(x, i)
		}
	}

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	bodyFace, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	pad := float64(r.style.Padding)
	y := pad + 16

	// Name line
	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	name := data.DisplayName
	if len(name) > 22 {
		name = name[:21] + "…"
	}
	drawSharpText(dc, name, pad, y)

	// Rank badge next to the name; equipped rank wins over the level rank.
	badge := data.LevelRank
	if data.EquippedRank != "" {
		badge = common.FormatRankName(data.EquippedRank)
	}
	nameWidth, _ := dc.MeasureString(name)
	dc.SetFontFace(bodyFace)
	dc.SetRGB(r.style.AccentRGB[0], r.style.AccentRGB[1], r.style.AccentRGB[2])
	drawSharpText(dc, badge, pad+nameWidth+10, y)

	// Level and XP line
	y += 28
	dc.SetRGB(0.85, 0.85, 0.9)
	drawSharpText(dc, fmt.Sprintf("Level %d", data.Level), pad, y)
	xpText := fmt.Sprintf("%s / %s XP", common.FormatCount(data.XPIntoLevel), common.FormatCount(data.XPForNext))
	w, _ := dc.MeasureString(xpText)
	drawSharpText(dc, xpText, float64(r.style.Width)-pad-w, y)

	// Progress bar toward the next level
	y += 10
	barWidth := float64(r.style.Width) - 2*pad
	barHeight := float64(r.style.BarHeight)

	dc.SetRGBA(r.style.BarBG[0], r.style.BarBG[1], r.style.BarBG[2], r.style.BarBG[3])
	dc.DrawRoundedRectangle(pad, y, barWidth, barHeight, barHeight/2)
	dc.Fill()

	progress := 0.0
	if data.XPForNext > 0 {
		progress = float64(data.XPIntoLevel) / float64(data.XPForNext)
	}
	if progress > 1 {
		progress = 1
	}
	if progress > 0 {
		fillWidth := barWidth * progress
		if fillWidth < barHeight {
			fillWidth = barHeight // keep the rounded ends intact
		}
		dc.SetRGB(r.style.BarFill[0], r.style.BarFill[1], r.style.BarFill[2])
		dc.DrawRoundedRectangle(pad, y, fillWidth, barHeight, barHeight/2)
		dc.Fill()
	}

	// Footer stats
	y += barHeight + 24
	dc.SetRGB(0.95, 0.85, 0.5)
	drawSharpText(dc, fmt.Sprintf("Coins: %s", common.FormatCount(data.Coins)), pad, y)

	if data.Sparkles != nil && data.Sparkles.Total() > 0 {
		sparkleText := fmt.Sprintf("Sparkles: %d", data.Sparkles.Total())
		w, _ := dc.MeasureString(sparkleText)
		dc.SetRGB(0.7, 0.85, 1.0)
		drawSharpText(dc, sparkleText, float64(r.style.Width)-pad-w, y)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return &buf, nil
}

// drawSharpText draws text with a subtle shadow pass for perceived sharpness
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}
