package model

// Event is the canonical representation of one schedule entry, merged across
// the regular timetable, appointment slots and custom calendars.
//
// Exactly one of IsRdv/IsRegular is true unless the event is custom.
type Event struct {
	IsCustom  bool `json:"is_custom"`
	IsRdv     bool `json:"is_rdv"`
	IsRegular bool `json:"is_regular"`

	Year         uint64 `json:"year"`
	CodeModule   string `json:"code_module"`
	CodeInstance string `json:"code_instance"`
	CodeActi     string `json:"code_acti"`
	CodeEvent    string `json:"code_event"`
	Semester     uint64 `json:"semester"`

	// Custom events are addressed by calendar and event id instead of
	// module coordinates.
	CalendarID uint64 `json:"calendar_id,omitempty"`
	EventID    uint64 `json:"event_id,omitempty"`

	Title     string `json:"title"`
	Module    string `json:"module"`
	Room      string `json:"room"`
	Teacher   string `json:"teacher"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`

	RegistrationStatus bool `json:"registration_status"`
}

// Calendar is one user-created custom calendar, discovered per caller.
type Calendar struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// Appointment is a resolved rdv slot for the caller.
type Appointment struct {
	Title     string `json:"title"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// Coordinate addresses an activity on the upstream portal. CodeEvent is
// required for regular events and empty for appointments.
type Coordinate struct {
	Year         uint64 `json:"year"`
	CodeModule   string `json:"code_module"`
	CodeInstance string `json:"code_instance"`
	CodeActi     string `json:"code_acti"`
	CodeEvent    string `json:"code_event,omitempty"`
}

// User holds the caller's profile as reported by the portal.
type User struct {
	// Full name (firstname and lastname)
	Name string `json:"name"`

	// Email address
	Email string `json:"email"`

	// First group the user belongs to (should be city of enrolment)
	City string `json:"city"`

	// Student year
	Year uint64 `json:"year"`

	// Current semester
	Semester uint64 `json:"semester"`

	// Credits obtained
	Credits uint64 `json:"credits"`

	// Current G.P.A
	GPA string `json:"gpa"`

	// Weekly log in hours (continuous)
	Log float64 `json:"log"`
}
