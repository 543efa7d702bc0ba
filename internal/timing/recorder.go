package timing

// Recorder samples a Clock at the fixed points of a frame and publishes the result.
// It is owned by the frame loop goroutine.
type Recorder struct {
	clock      Clock
	pub        *Publisher
	cur        FrameTiming
	lastGPUEnd uint64
	frames     uint64
}

// NewRecorder returns a recorder that publishes to pub.
func NewRecorder(clock Clock, pub *Publisher) *Recorder {
	return &Recorder{clock: clock, pub: pub}
}

// BeginFrame starts a new frame at the current tick.
func (r *Recorder) BeginFrame() uint64 {
	now := r.clock.Now()
	r.cur = FrameTiming{BeginTime: now, Frequency: r.clock.Frequency(), Index: r.frames}
	return now
}

// MarkUpdateEnd records the end of the CPU update.
func (r *Recorder) MarkUpdateEnd() {
	r.cur.UpdateEndTime = r.clock.Now()
}

// MarkGPUEnd records the moment the backend finished presenting. Backends that cannot query the
// vertical blank use the same sample for MaybeVblankTime.
func (r *Recorder) MarkGPUEnd() {
	now := r.clock.Now()
	r.cur.GPUEndTime = now
	r.cur.MaybeVblankTime = now
}

// Publish computes VisibleTime, publishes the frame and returns the published copy.
func (r *Recorder) Publish() FrameTiming {
	if r.lastGPUEnd == 0 {
		r.cur.VisibleTime = Elapsed(r.cur.BeginTime, r.cur.GPUEndTime, r.cur.Frequency)
	} else {
		r.cur.VisibleTime = Elapsed(r.lastGPUEnd, r.cur.GPUEndTime, r.cur.Frequency)
	}
	r.lastGPUEnd = r.cur.GPUEndTime
	r.frames++
	r.pub.Publish(r.cur)
	return r.cur
}

// Frames returns the number of published frames.
func (r *Recorder) Frames() uint64 {
	return r.frames
}
