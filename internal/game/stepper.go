package game

// maxStepsPerFrame bounds catch-up after a long frame.
const maxStepsPerFrame = 5

// stepper turns variable frame times into a whole number of fixed steps.
type stepper struct {
	dt  float32
	acc float32
}

func newStepper(dt float32) stepper {
	return stepper{dt: dt}
}

// advance adds frameTime and returns how many fixed steps are due. Time
// beyond maxStepsPerFrame steps is dropped.
func (s *stepper) advance(frameTime float32) int {
	s.acc += frameTime
	steps := 0
	for s.acc >= s.dt && steps < maxStepsPerFrame {
		s.acc -= s.dt
		steps++
	}
	if steps == maxStepsPerFrame && s.acc >= s.dt {
		s.acc = 0
	}
	return steps
}

func (s *stepper) reset() {
	s.acc = 0
}
