package sprite

import (
	"fmt"
	"image/color"
)

// Stage is a growth phase of the creature. It selects the canvas size,
// the palette, and horn-vs-ear styling.
type Stage string

const (
	StageBaby      Stage = "baby"
	StageAdult     Stage = "adult"
	StageLegendary Stage = "legendary"
)

// Mood is an emotional expression. It selects the face geometry and
// whether the cheeks get a blush.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// StageProfile holds the canvas size and palette for one growth stage.
type StageProfile struct {
	Size    int // canvas side in pixels
	Body    color.NRGBA
	Belly   color.NRGBA
	Outline color.NRGBA
	Accent  color.NRGBA
	Glow    color.NRGBA
}

// MoodProfile holds the face geometry for one mood. EyeHeight and
// MouthHeight are fractions of the canvas side. MouthCurve widens the
// mouth arc sweep (more negative reads as a stronger smile); its safe
// range is the three tabulated values only. CheekAlpha of 0 disables
// the blush.
type MoodProfile struct {
	EyeHeight   float64
	MouthHeight float64
	MouthCurve  float64
	CheekAlpha  uint8
}

// Built-in stage profiles. Adding a stage means adding an entry here
// and to stageOrder; nothing else changes.
var stageProfiles = map[Stage]StageProfile{
	StageBaby: {
		Size:    64,
		Body:    color.NRGBA{R: 253, G: 233, B: 196, A: 255},
		Belly:   color.NRGBA{R: 255, G: 248, B: 226, A: 255},
		Outline: color.NRGBA{R: 92, G: 64, B: 56, A: 255},
		Accent:  color.NRGBA{R: 255, G: 206, B: 150, A: 255},
		Glow:    color.NRGBA{R: 255, G: 255, B: 255, A: 60},
	},
	StageAdult: {
		Size:    128,
		Body:    color.NRGBA{R: 196, G: 233, B: 253, A: 255},
		Belly:   color.NRGBA{R: 226, G: 246, B: 255, A: 255},
		Outline: color.NRGBA{R: 37, G: 64, B: 92, A: 255},
		Accent:  color.NRGBA{R: 120, G: 191, B: 245, A: 255},
		Glow:    color.NRGBA{R: 255, G: 255, B: 255, A: 50},
	},
	StageLegendary: {
		Size:    192,
		Body:    color.NRGBA{R: 225, G: 207, B: 255, A: 255},
		Belly:   color.NRGBA{R: 242, G: 233, B: 255, A: 255},
		Outline: color.NRGBA{R: 68, G: 45, B: 100, A: 255},
		Accent:  color.NRGBA{R: 164, G: 132, B: 255, A: 255},
		Glow:    color.NRGBA{R: 255, G: 255, B: 255, A: 40},
	},
}

var moodProfiles = map[Mood]MoodProfile{
	MoodHappy:   {EyeHeight: 0.35, MouthHeight: 0.53, MouthCurve: -8.0, CheekAlpha: 120},
	MoodNeutral: {EyeHeight: 0.38, MouthHeight: 0.58, MouthCurve: -3.0, CheekAlpha: 0},
	MoodSad:     {EyeHeight: 0.42, MouthHeight: 0.63, MouthCurve: -1.0, CheekAlpha: 0},
}

var stageOrder = []Stage{StageBaby, StageAdult, StageLegendary}
var moodOrder = []Mood{MoodHappy, MoodNeutral, MoodSad}

// Stages returns all growth stages in declaration order. The batch
// driver depends on this order being stable.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Moods returns all moods in declaration order.
func Moods() []Mood {
	out := make([]Mood, len(moodOrder))
	copy(out, moodOrder)
	return out
}

// StageFor looks up the profile for a stage. An unknown stage is a
// programming error in the caller and is returned as-is, unrecovered.
func StageFor(s Stage) (StageProfile, error) {
	p, ok := stageProfiles[s]
	if !ok {
		return StageProfile{}, fmt.Errorf("unknown stage %q", s)
	}
	return p, nil
}

// MoodFor looks up the profile for a mood.
func MoodFor(m Mood) (MoodProfile, error) {
	p, ok := moodProfiles[m]
	if !ok {
		return MoodProfile{}, fmt.Errorf("unknown mood %q", m)
	}
	return p, nil
}

// FileName returns the on-disk name for one combination,
// e.g. "pet-baby-happy.png".
func FileName(stage Stage, mood Mood) string {
	return fmt.Sprintf("pet-%s-%s.png", stage, mood)
}
