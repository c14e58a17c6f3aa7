package app

//Divider turns the raw timer ticks into the simulation frames
//it is not safe for concurrent use, State guards it with its lock
type Divider struct {
	ticksPerFrame int
	count         int
}

//NewDivider creates the divider firing fps times per second on the timer running at rawHz
func NewDivider(rawHz int, fps int) Divider {
	if fps <= 0 {
		fps = DefFramesPerSecond
	}
	n := rawHz / fps
	if n < 1 {
		n = 1
	}
	return Divider{ticksPerFrame: n}
}

//Tick counts one raw tick and reports whether the frame boundary is reached
func (d *Divider) Tick() bool {
	d.count++
	if d.count >= d.ticksPerFrame {
		d.count = 0
		return true
	}
	return false
}

//Count returns the ticks counted since the last frame boundary
func (d Divider) Count() int { return d.count }

//TicksPerFrame returns the number of raw ticks in one frame
func (d Divider) TicksPerFrame() int { return d.ticksPerFrame }

//Reset drops the ticks counted so far
func (d *Divider) Reset() { d.count = 0 }
