// Package animations implements the frame clock behind agent animations.
// Clips are pure frame counters; the renderer decides how a frame index is
// drawn, so headless hosts can run them unchanged.
package animations

// Animation advances a frame index at a fixed rate, driven by the shared
// tick's dt. Looping clips wrap forever; one-shot clips freeze on their last
// frame and set Finished, which the state machines read for
// animation-driven exits.
type Animation struct {
	Frames    int
	FrameRate float64
	Loop      bool

	// Finished is set when a one-shot clip has shown its last frame for a
	// full frame interval. It stays set until Restart.
	Finished bool

	frame   int
	elapsed float64
}

// New returns a clip at frame 0.
func New(frames int, frameRate float64, loop bool) *Animation {
	return &Animation{Frames: frames, FrameRate: frameRate, Loop: loop}
}

// Update advances the clip by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.Finished || a.FrameRate <= 0 || a.Frames <= 0 {
		return
	}
	frameTime := 1.0 / a.FrameRate
	a.elapsed += dt
	for a.elapsed >= frameTime {
		a.elapsed -= frameTime
		a.frame++
		if a.frame >= a.Frames {
			if a.Loop {
				a.frame = 0
				continue
			}
			a.frame = a.Frames - 1
			a.Finished = true
			return
		}
	}
}

// Frame returns the current frame index in [0, Frames).
func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds the clip to frame 0 and clears Finished.
func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Finished = false
}
