package types

// Car is the per-elevator surface provided by the host. The dispatcher
// only reads state and issues commands through it.
type Car interface {
	CurrentFloor() int
	PressedFloors() []int
	LoadFactor() float64

	UpIndicator() bool
	DownIndicator() bool
	SetUpIndicator(on bool)
	SetDownIndicator(on bool)

	// GoTo replaces whatever destination the car had queued.
	GoTo(floor int)

	// OnEvent installs the handler for idle, button, passing and
	// stopped events. A later call replaces the previous handler.
	OnEvent(handler func(CarEvent))
}

// Floor is the per-floor surface provided by the host.
type Floor interface {
	FloorIndex() int
	OnButton(handler func(Direction))
}

type CarEventKind int

const (
	EV_Idle               CarEventKind = 0
	EV_FloorButtonPressed CarEventKind = 1
	EV_PassingFloor       CarEventKind = 2
	EV_StoppedAtFloor     CarEventKind = 3
)

func (k CarEventKind) String() string {
	switch k {
	case EV_Idle:
		return "idle"
	case EV_FloorButtonPressed:
		return "floor_button_pressed"
	case EV_PassingFloor:
		return "passing_floor"
	case EV_StoppedAtFloor:
		return "stopped_at_floor"
	}
	return "unknown"
}

// CarEvent is a stimulus emitted by a car. Floor is unused for EV_Idle,
// Direction is only set for EV_PassingFloor.
type CarEvent struct {
	Kind      CarEventKind
	Floor     int
	Direction Direction
}

type Indicators struct {
	Up   bool
	Down bool
}

// DestinationCommand sends a car to Floor. DIR_None means infer the travel
// direction from the floor and turn both lamps off.
type DestinationCommand struct {
	Floor     int
	Direction Direction
}
