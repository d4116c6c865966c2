// Package sprite procedurally draws the pet creature sprites: one
// square transparent RGBA image per stage × mood combination.
package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// cheekBlush is the fixed blush tint; only its alpha varies per mood.
var cheekBlush = color.NRGBA{R: 255, G: 153, B: 170}

// Render draws the sprite for one stage × mood combination onto a
// fresh transparent canvas of side StageProfile.Size. Drawing is five
// ordered passes (glow, ears, body, face, star), each composited over
// the previous ones; the order is significant and must not change.
// Rendering is pure: identical inputs produce pixel-identical output.
func Render(stage Stage, mood Mood) (image.Image, error) {
	sp, err := StageFor(stage)
	if err != nil {
		return nil, err
	}
	mp, err := MoodFor(mood)
	if err != nil {
		return nil, err
	}

	size := sp.Size
	dc := gg.NewContext(size, size)

	drawGlow(dc, size, sp)
	drawEars(dc, size, sp, stage)
	drawBody(dc, size, sp)
	drawFace(dc, size, sp, mp)
	if stage == StageLegendary {
		drawStar(dc, size, sp)
	}

	return dc.Image(), nil
}

// drawGlow strokes the decorative backdrop ring, inscribed with a
// margin of size/10 on all sides.
func drawGlow(dc *gg.Context, size int, sp StageProfile) {
	margin := size / 10
	r := float64(size-2*margin) / 2
	dc.DrawEllipse(float64(size)/2, float64(size)/2, r, r)
	dc.SetColor(sp.Glow)
	dc.SetLineWidth(float64(max(1, size/64)))
	dc.Stroke()
}

// drawEars draws rounded-rectangle ears, or two horn triangles for the
// legendary stage.
func drawEars(dc *gg.Context, size int, sp StageProfile, stage Stage) {
	earWidth := size / 6
	top := float64(int(float64(size) * 0.08))
	cx := size / 2

	if stage == StageLegendary {
		hornHeight := size / 4
		for _, offset := range []int{-earWidth, earWidth} {
			dc.MoveTo(float64(cx+offset), top)
			dc.LineTo(float64(cx)+float64(offset)*0.6, top+float64(hornHeight))
			dc.LineTo(float64(cx)+float64(offset)*1.4, top+float64(hornHeight))
			dc.ClosePath()
			dc.SetColor(sp.Accent)
			dc.FillPreserve()
			dc.SetColor(sp.Outline)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
		return
	}

	earHeight := size / 7
	left := cx - earWidth - size/12
	right := cx + size/12
	outlineWidth := float64(max(2, size/36))
	for _, x := range []int{left, right} {
		dc.DrawRoundedRectangle(float64(x), top, float64(earWidth), float64(earHeight), float64(earWidth)/2)
		dc.SetColor(sp.Body)
		dc.FillPreserve()
		dc.SetColor(sp.Outline)
		dc.SetLineWidth(outlineWidth)
		dc.Stroke()
	}
}

// drawBody draws the main silhouette, the belly highlight, and the
// accent arc along the body's bounding box.
func drawBody(dc *gg.Context, size int, sp StageProfile) {
	outlineWidth := float64(max(2, size/32))
	margin := size / 8
	top := int(float64(size) * 0.18)
	bottom := size - int(float64(size)*0.12)

	dc.DrawRoundedRectangle(float64(margin), float64(top),
		float64(size-2*margin), float64(bottom-top), float64(size/4))
	dc.SetColor(sp.Body)
	dc.FillPreserve()
	dc.SetColor(sp.Outline)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()

	bellyMargin := size / 3
	bellyTop := int(float64(size) * 0.42)
	bellyBottom := size - int(float64(size)*0.16)
	dc.DrawEllipse(float64(size)/2, float64(bellyTop+bellyBottom)/2,
		float64(size-2*bellyMargin)/2, float64(bellyBottom-bellyTop)/2)
	dc.SetColor(sp.Belly)
	dc.Fill()

	dc.DrawEllipticalArc(float64(size)/2, float64(top+bottom)/2,
		float64(size-2*margin)/2, float64(bottom-top)/2,
		gg.Radians(200), gg.Radians(340))
	dc.SetColor(sp.Accent)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
}

// drawFace draws the eyes, the mouth arc, and the optional cheek
// blush. All vertical placement comes from the mood profile.
func drawFace(dc *gg.Context, size int, sp StageProfile, mp MoodProfile) {
	eyeWidth := max(4, size/16)
	eyeHeight := max(6, size/10)
	eyeSpacing := size / 8
	cx := size / 2
	eyeY := int(float64(size) * mp.EyeHeight)

	dc.SetColor(sp.Outline)
	for _, offset := range []int{-eyeSpacing, eyeSpacing} {
		x0 := cx + offset - eyeWidth/2
		y0 := eyeY - eyeHeight/2
		w := cx + offset + eyeWidth/2 - x0
		h := eyeY + eyeHeight/2 - y0
		dc.DrawRoundedRectangle(float64(x0), float64(y0), float64(w), float64(h), float64(eyeWidth)/2)
		dc.Fill()
	}

	mouthWidth := size / 6
	mouthY := int(float64(size) * mp.MouthHeight)
	mouthTop := mouthY - mouthWidth/2
	mouthBottom := mouthY + mouthWidth/2
	start := 200 - mp.MouthCurve*20
	end := 340 + mp.MouthCurve*20
	// A strong smile pushes start past end (happy: 360 > 180). The
	// mouth always sweeps clockwise from start, so wrap end upward;
	// without this the arc draws backwards across the top semicircle
	// and the smile becomes a frown.
	for end < start {
		end += 360
	}
	dc.DrawEllipticalArc(float64(cx), float64(mouthTop+mouthBottom)/2,
		float64(mouthWidth), float64(mouthBottom-mouthTop)/2,
		gg.Radians(start), gg.Radians(end))
	dc.SetColor(sp.Outline)
	dc.SetLineWidth(float64(max(2, size/48)))
	dc.Stroke()

	if mp.CheekAlpha > 0 {
		cheekRadius := size / 12
		blush := cheekBlush
		blush.A = mp.CheekAlpha
		dc.SetColor(blush)
		for _, offset := range []int{-eyeSpacing, eyeSpacing} {
			y0 := mouthY - cheekRadius/2
			y1 := mouthY + cheekRadius
			dc.DrawEllipse(float64(cx+offset), float64(y0+y1)/2,
				float64(cheekRadius), float64(y1-y0)/2)
			dc.Fill()
		}
	}
}

// drawStar fills a 10-point star near the top-right, in the accent
// color lightened 20% toward white. Legendary only.
func drawStar(dc *gg.Context, size int, sp StageProfile) {
	outer := size / 10
	cx := float64(int(float64(size) * 0.78))
	cy := float64(int(float64(size) * 0.28))

	for i := 0; i < 10; i++ {
		angle := gg.Radians(float64(i * 36))
		r := float64(outer)
		if i%2 == 1 {
			r = float64(outer / 2)
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(Lighten(sp.Accent, 0.2))
	dc.Fill()
}
