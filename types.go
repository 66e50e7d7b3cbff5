package syllabus

import "fmt"

// Snapshot is a complete, self-contained description of one syllabus.
// It carries everything the document assembler needs; nothing else is
// consulted at generation time, so equal snapshots produce equal documents.
type Snapshot struct {
	Course     CourseInfo          `json:"course_info" yaml:"course_info"`
	Instructor InstructorInfo      `json:"instructor_info" yaml:"instructor_info"`
	Staff      []StaffSection      `json:"sections,omitempty" yaml:"sections,omitempty"`
	Outcomes   []string            `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	Objectives []LearningObjective `json:"learning_objectives,omitempty" yaml:"learning_objectives,omitempty"`
	Materials  Materials           `json:"materials" yaml:"materials"`
	Grading    []GradingCategory   `json:"grading_categories,omitempty" yaml:"grading_categories,omitempty"`
	Schedule   []ScheduleEntry     `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Policies   Policies            `json:"policies" yaml:"policies"`
}

// CourseInfo holds course identity and descriptive fields.
type CourseInfo struct {
	Number        string   `json:"number" yaml:"number"`
	Title         string   `json:"title" yaml:"title"`
	Term          string   `json:"term" yaml:"term"`
	Credits       string   `json:"credits" yaml:"credits"`
	Prerequisites string   `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	MeetingTimes  string   `json:"meeting_times" yaml:"meeting_times"`
	Location      string   `json:"location" yaml:"location"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Objectives    []string `json:"objectives,omitempty" yaml:"objectives,omitempty"`
}

// InstructorInfo holds the primary instructor's contact block.
type InstructorInfo struct {
	Name        string `json:"name" yaml:"name"`
	Office      string `json:"office,omitempty" yaml:"office,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email       string `json:"email" yaml:"email"`
	OfficeHours string `json:"office_hours,omitempty" yaml:"office_hours,omitempty"`
}

// StaffSection describes one discussion section or teaching assistant.
// ClassRoom and ClassTime are optional and omitted from the document
// when empty.
type StaffSection struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	OfficeHours string `json:"office_hours,omitempty" yaml:"office_hours,omitempty"`
	ClassRoom   string `json:"class_room,omitempty" yaml:"class_room,omitempty"`
	ClassTime   string `json:"class_time,omitempty" yaml:"class_time,omitempty"`
}

// LearningObjective is one row of the general-education objectives table.
type LearningObjective struct {
	Category       string `json:"category" yaml:"category"`
	SLO            string `json:"slo" yaml:"slo"`
	Assignments    string `json:"assignments,omitempty" yaml:"assignments,omitempty"`
	CourseSpecific string `json:"course_specific,omitempty" yaml:"course_specific,omitempty"`
}

// Materials holds required course materials and the associated fee.
type Materials struct {
	Required string `json:"required,omitempty" yaml:"required,omitempty"`
	Fee      string `json:"fee,omitempty" yaml:"fee,omitempty"`
}

// Assignment is one graded item inside a grading category.
type Assignment struct {
	Title       string `json:"title" yaml:"title"`
	DueDate     string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Points      string `json:"points,omitempty" yaml:"points,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// GradingCategory is one weighted component of the final grade.
// Weight is kept as an opaque string; no arithmetic is performed on it.
type GradingCategory struct {
	Name        string       `json:"name" yaml:"name"`
	Weight      string       `json:"weight" yaml:"weight"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty" yaml:"assignments,omitempty"`
}

// ScheduleEntry is one row of the course calendar.
type ScheduleEntry struct {
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	Topic    string `json:"topic,omitempty" yaml:"topic,omitempty"`
	Readings string `json:"readings,omitempty" yaml:"readings,omitempty"`
	WorkDue  string `json:"work_due,omitempty" yaml:"work_due,omitempty"`
}

// IsEmpty reports whether every cell of the entry is blank.
func (e ScheduleEntry) IsEmpty() bool {
	return e.Date == "" && e.Topic == "" && e.Readings == "" && e.WorkDue == ""
}

// Policies selects which policy sections appear in the document and
// carries any custom text the user supplied for them. For late
// submissions and extra credit the text is resolved in three steps:
// explicit text, then the named preset, then a fixed "not specified"
// fallback.
type Policies struct {
	ShowGenEd          bool `json:"show_gen_ed" yaml:"show_gen_ed"`
	Assessment         bool `json:"assessment" yaml:"assessment"`
	Extensions         bool `json:"extensions" yaml:"extensions"`
	LateSubmissions    bool `json:"late_submissions" yaml:"late_submissions"`
	ExtraCredit        bool `json:"extra_credit" yaml:"extra_credit"`
	Canvas             bool `json:"canvas" yaml:"canvas"`
	Technology         bool `json:"technology" yaml:"technology"`
	Communication      bool `json:"communication" yaml:"communication"`
	OutsideSupport     bool `json:"outside_support" yaml:"outside_support"`
	InClassRecording   bool `json:"in_class_recording" yaml:"in_class_recording"`
	ConflictResolution bool `json:"conflict_resolution" yaml:"conflict_resolution"`
	CampusResources    bool `json:"campus_resources" yaml:"campus_resources"`
	AcademicResources  bool `json:"academic_resources" yaml:"academic_resources"`
	GradingRounding    bool `json:"grading_rounding" yaml:"grading_rounding"`
	Simplified         bool `json:"use_simplified_policies" yaml:"use_simplified_policies"`

	LatePreset        string `json:"late_preset,omitempty" yaml:"late_preset,omitempty"`
	LateText          string `json:"late_text,omitempty" yaml:"late_text,omitempty"`
	ExtraCreditPreset string `json:"extra_credit_preset,omitempty" yaml:"extra_credit_preset,omitempty"`
	ExtraCreditText   string `json:"extra_credit_text,omitempty" yaml:"extra_credit_text,omitempty"`
	AssessmentText    string `json:"assessment_text,omitempty" yaml:"assessment_text,omitempty"`
	ExtensionsText    string `json:"extensions_text,omitempty" yaml:"extensions_text,omitempty"`
	CanvasText        string `json:"canvas_text,omitempty" yaml:"canvas_text,omitempty"`
	TechnologyText    string `json:"technology_text,omitempty" yaml:"technology_text,omitempty"`
	CommunicationText string `json:"communication_text,omitempty" yaml:"communication_text,omitempty"`
	SupportText       string `json:"support_text,omitempty" yaml:"support_text,omitempty"`
}

// requiredFields lists the fields every syllabus must carry, in the
// order they are reported.
var requiredFields = []struct {
	name string
	get  func(*Snapshot) string
}{
	{"course number", func(s *Snapshot) string { return s.Course.Number }},
	{"course title", func(s *Snapshot) string { return s.Course.Title }},
	{"term", func(s *Snapshot) string { return s.Course.Term }},
	{"credits", func(s *Snapshot) string { return s.Course.Credits }},
	{"meeting times", func(s *Snapshot) string { return s.Course.MeetingTimes }},
	{"class location", func(s *Snapshot) string { return s.Course.Location }},
	{"instructor name", func(s *Snapshot) string { return s.Instructor.Name }},
	{"instructor email", func(s *Snapshot) string { return s.Instructor.Email }},
}

// Validate checks that all required snapshot fields are present.
func (s *Snapshot) Validate() error {
	if s == nil {
		return ErrNilSnapshot
	}
	for _, f := range requiredFields {
		if f.get(s) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
