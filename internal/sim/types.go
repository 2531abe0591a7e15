package sim

// Action is a logical input action, independent of the key that triggered it.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPanNorth
	ActionPanSouth
	ActionPanEast
	ActionPanWest
	ActionSpeedUp
	ActionSpeedDown
	ActionClear
	ActionRandomize
	ActionTogglePause
	ActionStep
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionQuit:        "quit",
	ActionPanNorth:    "pan-north",
	ActionPanSouth:    "pan-south",
	ActionPanEast:     "pan-east",
	ActionPanWest:     "pan-west",
	ActionSpeedUp:     "speed-up",
	ActionSpeedDown:   "speed-down",
	ActionClear:       "clear",
	ActionRandomize:   "randomize",
	ActionTogglePause: "toggle-pause",
	ActionStep:        "step",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Event is one input delivered to the controller. The set of events is
// closed: KeyEvent, PointerEvent, ResizeEvent and TickEvent.
type Event interface {
	event()
}

type KeyEvent struct {
	Action Action
}

// PointerEvent is a press or drag. Col is a cell column, i.e. the terminal
// column already halved.
type PointerEvent struct {
	Button   Button
	Col, Row int
}

// ResizeEvent carries the terminal size available to the grid view.
type ResizeEvent struct {
	Cols, Rows int
}

type TickEvent struct{}

func (KeyEvent) event()     {}
func (PointerEvent) event() {}
func (ResizeEvent) event()  {}
func (TickEvent) event()    {}

// Glyph is what a single screen cell shows.
type Glyph int

const (
	GlyphBlank Glyph = iota
	GlyphDead
	GlyphAlive
)

// Placement is one screen cell of a rendered frame.
type Placement struct {
	Col, Row int
	Glyph    Glyph
}

// Status summarizes the controller for the status line.
type Status struct {
	CameraX, CameraY int
	Speed            int
	Paused           bool
	LiveCells        int
	Generation       int
	Width, Height    int
}

// Options configures a new Controller.
type Options struct {
	Width, Height int
	Seed          int64
	// Cols and Rows are the terminal size used for the initial viewport.
	Cols, Rows int
	Speed      int
}
