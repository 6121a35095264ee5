package animations

// Animation is a frame ticker for one sprite sheet. The sheet itself is drawn
// by the host; the simulation only needs the current frame index.
type Animation struct {
	First            int
	Last             int
	Step             int // how many indices do we move per frame
	Hold             int // how many ticks before next frame
	elapsed          int
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
	Locked           bool // If true, the frame never advances
}

func (a *Animation) Update() {
	if a.Locked {
		return
	}
	if a.FreezeOnComplete && a.frame >= a.Last {
		return
	}
	a.elapsed++
	if a.Hold > 0 && a.elapsed%a.Hold != 0 {
		return
	}
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// AtLastFrame reports whether the ticker is showing its final frame.
func (a *Animation) AtLastFrame() bool {
	return a.frame >= a.Last
}

// SetFrame pins the current frame, clamped to the sheet.
func (a *Animation) SetFrame(frame int) {
	if frame < a.First {
		frame = a.First
	}
	if frame > a.Last {
		frame = a.Last
	}
	a.frame = frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

// NewAnimation builds a ticker over frames first..last advancing every hold ticks.
func NewAnimation(first, last, step, hold int) *Animation {
	if step < 1 {
		step = 1
	}
	if hold < 1 {
		hold = 1
	}
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		Hold:  hold,
		frame: first,
	}
}

// NewSheet builds a ticker over a sheet of framesMax frames.
func NewSheet(framesMax, hold int) *Animation {
	if framesMax < 1 {
		framesMax = 1
	}
	return NewAnimation(0, framesMax-1, 1, hold)
}
