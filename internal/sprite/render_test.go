package sprite

import (
	"image"
	"image/color"
	"testing"
)

func renderAll(t *testing.T) map[Stage]map[Mood]image.Image {
	t.Helper()
	out := make(map[Stage]map[Mood]image.Image)
	for _, stage := range Stages() {
		out[stage] = make(map[Mood]image.Image)
		for _, mood := range Moods() {
			img, err := Render(stage, mood)
			if err != nil {
				t.Fatalf("Render(%s, %s): %v", stage, mood, err)
			}
			out[stage][mood] = img
		}
	}
	return out
}

func TestRenderCanvasSize(t *testing.T) {
	for stage, byMood := range renderAll(t) {
		profile, _ := StageFor(stage)
		for mood, img := range byMood {
			b := img.Bounds()
			if b.Dx() != profile.Size || b.Dy() != profile.Size {
				t.Errorf("%s/%s: bounds %dx%d, want %dx%d",
					stage, mood, b.Dx(), b.Dy(), profile.Size, profile.Size)
			}
		}
	}
}

func TestRenderCornersTransparent(t *testing.T) {
	// The glow ring is inscribed with a size/10 margin, so nothing in
	// any pass reaches the corners of the canvas.
	for stage, byMood := range renderAll(t) {
		profile, _ := StageFor(stage)
		s := profile.Size
		corners := []image.Point{
			{0, 0}, {s - 1, 0}, {0, s - 1}, {s - 1, s - 1},
		}
		for mood, img := range byMood {
			for _, pt := range corners {
				_, _, _, a := img.At(pt.X, pt.Y).RGBA()
				if a != 0 {
					t.Errorf("%s/%s: corner %v alpha %d, want 0", stage, mood, pt, a)
				}
			}
		}
	}
}

func TestStarOnlyOnLegendary(t *testing.T) {
	for stage, byMood := range renderAll(t) {
		profile, _ := StageFor(stage)
		s := profile.Size
		cx := int(float64(s) * 0.78)
		cy := int(float64(s) * 0.28)
		starFill := color.RGBAModel.Convert(Lighten(profile.Accent, 0.2))

		for mood, img := range byMood {
			got := color.RGBAModel.Convert(img.At(cx, cy))
			if stage == StageLegendary {
				if got != starFill {
					t.Errorf("%s/%s: star center %v, want %v", stage, mood, got, starFill)
				}
			} else if got == starFill {
				t.Errorf("%s/%s: star fill present at %d,%d", stage, mood, cx, cy)
			}
		}
	}
}

// pinkPixels counts pixels in the left cheek region whose red channel
// exceeds blue. The adult and legendary palettes are entirely
// blue-leaning, so only the blush tint can satisfy the predicate.
func pinkPixels(img image.Image, size int, mp MoodProfile) int {
	cheekRadius := size / 12
	cx := size/2 - size/8
	mouthY := int(float64(size) * mp.MouthHeight)

	count := 0
	for y := mouthY - cheekRadius/2; y <= mouthY+cheekRadius; y++ {
		for x := cx - cheekRadius; x <= cx+cheekRadius; x++ {
			r, _, b, _ := img.At(x, y).RGBA()
			if r > b {
				count++
			}
		}
	}
	return count
}

func TestBlushOnlyWhenHappy(t *testing.T) {
	all := renderAll(t)
	for _, stage := range []Stage{StageAdult, StageLegendary} {
		profile, _ := StageFor(stage)
		for mood, img := range all[stage] {
			mp, _ := MoodFor(mood)
			got := pinkPixels(img, profile.Size, mp)
			if mood == MoodHappy && got == 0 {
				t.Errorf("%s/%s: no blush pixels found", stage, mood)
			}
			if mood != MoodHappy && got != 0 {
				t.Errorf("%s/%s: %d blush pixels, want none", stage, mood, got)
			}
		}
	}
}

func TestHappyMouthArcSweepsBelowMouthLine(t *testing.T) {
	// The happy curve (-8) wraps the arc angles past 360°, so the
	// stroke must land on the bottom half of the mouth ellipse (a wide
	// smile), never the top. Both probe points sit over the belly, so
	// outline color can only come from the mouth stroke.
	mp, _ := MoodFor(MoodHappy)
	for _, stage := range Stages() {
		profile, _ := StageFor(stage)
		s := profile.Size

		img, err := Render(stage, MoodHappy)
		if err != nil {
			t.Fatalf("Render(%s, happy): %v", stage, err)
		}

		cx := s / 2
		mouthY := int(float64(s) * mp.MouthHeight)
		half := (s / 6) / 2
		outline := color.RGBAModel.Convert(profile.Outline)

		if got := color.RGBAModel.Convert(img.At(cx, mouthY+half)); got != outline {
			t.Errorf("%s/happy: no mouth stroke at bottom extreme (%d,%d): got %v, want %v",
				stage, cx, mouthY+half, got, outline)
		}
		if got := color.RGBAModel.Convert(img.At(cx, mouthY-half)); got == outline {
			t.Errorf("%s/happy: mouth stroke at top extreme (%d,%d); smile drawn on wrong side",
				stage, cx, mouthY-half)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, stage := range Stages() {
		for _, mood := range Moods() {
			a, err := Render(stage, mood)
			if err != nil {
				t.Fatalf("Render(%s, %s): %v", stage, mood, err)
			}
			b, err := Render(stage, mood)
			if err != nil {
				t.Fatalf("Render(%s, %s): %v", stage, mood, err)
			}
			bounds := a.Bounds()
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					if a.At(x, y) != b.At(x, y) {
						t.Fatalf("%s/%s: pixel %d,%d differs between renders", stage, mood, x, y)
					}
				}
			}
		}
	}
}

func TestRenderUnknownKeys(t *testing.T) {
	if _, err := Render("turbo", MoodHappy); err == nil {
		t.Error("Render with unknown stage: expected error")
	}
	if _, err := Render(StageBaby, "angry"); err == nil {
		t.Error("Render with unknown mood: expected error")
	}
}
