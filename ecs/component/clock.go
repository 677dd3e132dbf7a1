package component

// Clock is the frame clock. Systems read it instead of the wall clock.
type Clock struct {
	Frame   int
	DT      float64
	Elapsed float64
}

var ClockComponent = NewComponent[Clock]()
