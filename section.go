package syllabus

import "fmt"

// Alignment controls horizontal paragraph alignment in the sinks.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Section is one logical block of the assembled document: a heading,
// a paragraph of styled spans, or a table.
type Section interface {
	section()
}

// Heading is a document heading. Level 0 is the document title style;
// levels 1 and 2 map to the corresponding outline heading styles.
type Heading struct {
	Text  string
	Level int
	Align Alignment
}

// Paragraph is a run of styled spans. Indent is measured in
// quarter-inch steps. Compact paragraphs carry no spacing after, for
// the tight contact-info listings.
type Paragraph struct {
	Spans   []Span
	Align   Alignment
	Indent  int
	Compact bool
}

// Cell is one table cell's content.
type Cell []Span

// Table is a bordered grid with a bold header row. Widths are optional
// column width ratios consumed by the PDF sink; the word-processor
// sink sizes columns itself.
type Table struct {
	Header []string
	Rows   [][]Cell
	Widths []float64
}

func (Heading) section()   {}
func (Paragraph) section() {}
func (Table) section()     {}

// para builds a paragraph from pre-rendered spans.
func para(spans ...Span) Paragraph { return Paragraph{Spans: spans} }

// plain, bold and link are span constructors used throughout assembly.
func plain(text string) Span { return Span{Kind: SpanPlain, Text: text} }
func bold(text string) Span  { return Span{Kind: SpanBold, Text: text} }
func link(text, url string) Span {
	return Span{Kind: SpanHyperlink, Text: text, URL: url}
}

// textRow builds a table row of plain-text cells.
func textRow(cells ...string) []Cell {
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i] = Cell{plain(c)}
	}
	return row
}

// Assemble converts a snapshot into the ordered section list consumed
// by the document sinks. It is pure: equal snapshots produce equal
// lists, and nothing in the snapshot is mutated. Missing optional
// fields degrade to defaults or placeholder sentences; Assemble never
// fails.
func Assemble(snap *Snapshot) []Section {
	a := &assembler{snap: snap}

	a.titleBlock()
	a.generalInformation()
	a.descriptionAndPrerequisites()
	a.genEdDesignation()
	a.courseObjectives()
	a.learningOutcomes()
	a.objectivesTable()
	a.gradedWork()
	a.submissionInstructions()
	a.policySubsections()
	a.evaluations()
	a.universityPolicies()
	a.calendar()

	return a.out
}

type assembler struct {
	snap *Snapshot
	out  []Section
}

func (a *assembler) add(s ...Section) { a.out = append(a.out, s...) }

// blank emits an empty spacing paragraph.
func (a *assembler) blank() { a.add(Paragraph{}) }

func (a *assembler) titleBlock() {
	c := a.snap.Course
	a.add(Heading{Text: fmt.Sprintf("%s: %s", c.Number, c.Title), Level: 0, Align: AlignCenter})
	a.add(Paragraph{
		Spans: []Span{plain(fmt.Sprintf("%s (%s credits)", c.Term, c.Credits))},
		Align: AlignCenter,
	})
	a.blank()
}

// infoLine emits one indented, compact "Label: value" line. Email
// values become mailto hyperlinks.
func (a *assembler) infoLine(label, value string, mailto bool) {
	spans := []Span{bold(label + " ")}
	if mailto && value != "" {
		spans = append(spans, link(value, "mailto:"+value))
	} else {
		spans = append(spans, plain(value))
	}
	a.add(Paragraph{Spans: spans, Indent: 1, Compact: true})
}

func (a *assembler) generalInformation() {
	c := a.snap.Course
	in := a.snap.Instructor

	a.add(Heading{Text: "I. General Information", Level: 1})
	a.add(para(bold("Meeting days and times: "), plain(c.MeetingTimes)))
	a.add(para(bold("Class location: "), plain(c.Location)))

	a.blank()
	a.add(para(bold("Instructor:")))
	a.infoLine("Name:", in.Name, false)
	a.infoLine("Office:", in.Office, false)
	a.infoLine("Phone:", in.Phone, false)
	a.infoLine("Email:", in.Email, true)
	a.infoLine("Office Hours:", in.OfficeHours, false)

	if len(a.snap.Staff) == 0 {
		return
	}
	a.blank()
	a.add(para(bold("Sections:")))
	for _, ta := range a.snap.Staff {
		a.infoLine("Name:", ta.Name, false)
		a.infoLine("Email:", ta.Email, true)
		a.infoLine("Office Hours:", ta.OfficeHours, false)
		if ta.ClassRoom != "" {
			a.infoLine("Class Room:", ta.ClassRoom, false)
		}
		if ta.ClassTime != "" {
			a.infoLine("Class Time:", ta.ClassTime, false)
		}
	}
}

func (a *assembler) descriptionAndPrerequisites() {
	a.add(Heading{Text: "Course Description", Level: 1})
	a.add(Paragraph{Spans: RenderMarkup(a.snap.Course.Description)})

	a.add(Heading{Text: "Prerequisites", Level: 1})
	prereq := a.snap.Course.Prerequisites
	if prereq == "" {
		prereq = DefaultPrerequisites
	}
	a.add(para(plain(prereq)))
}

func (a *assembler) genEdDesignation() {
	if !a.snap.Policies.ShowGenEd {
		return
	}
	a.add(Heading{Text: "General Education Designation: " + GenEdDesignation, Level: 1})
	a.add(para(plain(GenEdStatement)))
	a.add(para(plain(fmt.Sprintf(
		"Your successful completion of %s with a grade of \"C\" or higher will count towards UF's General "+
			"Education State Core in %s. It will also count towards the State of Florida's Civic Literacy requirement.",
		a.snap.Course.Number, GenEdDesignation))))
}

// numberedList emits a 1-based numbered list, one indented paragraph
// per item. Numbering is recomputed here, skipping empty entries, so
// the snapshot's item order alone drives the visible numbers.
func (a *assembler) numberedList(items []string) {
	n := 0
	for _, item := range items {
		if item == "" {
			continue
		}
		n++
		a.add(Paragraph{Spans: []Span{plain(fmt.Sprintf("%d. %s", n, item))}, Indent: 1})
	}
}

func (a *assembler) courseObjectives() {
	a.add(Heading{Text: "Course Objectives", Level: 1})
	a.add(para(
		plain("All General Education area objectives can be found "),
		link("here", GenEdObjectivesURL),
		plain("."),
	))
	a.numberedList(a.snap.Course.Objectives)
}

func (a *assembler) learningOutcomes() {
	a.add(Heading{Text: "II. Student Learning Outcomes", Level: 1})
	a.add(para(plain("A student who successfully completes this course will:")))

	outcomes := a.snap.Outcomes
	if len(outcomes) == 0 {
		outcomes = DefaultOutcomes
	}
	a.numberedList(outcomes)
}

func (a *assembler) objectivesTable() {
	if !a.snap.Policies.ShowGenEd {
		return
	}
	a.blank()
	a.add(para(plain("Objectives—General Education and " + GenEdDesignation)))

	objectives := a.snap.Objectives
	if len(objectives) == 0 {
		objectives = DefaultLearningObjectives()
	}

	tbl := Table{
		Header: []string{"CATEGORY", sloHeader(GenEdDesignation), "STATE SLO ASSIGNMENTS", "COURSE-SPECIFIC"},
		Widths: []float64{0.15, 0.30, 0.30, 0.25},
	}
	for _, obj := range objectives {
		tbl.Rows = append(tbl.Rows, textRow(obj.Category, obj.SLO, obj.Assignments, obj.CourseSpecific))
	}
	a.add(tbl)
}

func (a *assembler) gradedWork() {
	a.add(Heading{Text: "III. Graded Work", Level: 1})
	a.requiredMaterials()
	a.gradingComponents()
	a.gradingScale()
}

func (a *assembler) requiredMaterials() {
	m := a.snap.Materials
	if m.Required == "" {
		return
	}
	a.add(Heading{Text: "Required Materials", Level: 2})
	a.add(Paragraph{Spans: RenderMarkup(m.Required)})

	fee := m.Fee
	if fee == "" {
		fee = DefaultMaterialsFee
	}
	a.add(para(bold("Materials Fee: $"), plain(fee)))
}

func (a *assembler) gradingComponents() {
	if len(a.snap.Grading) == 0 {
		return
	}
	a.add(Heading{Text: "Grading Components", Level: 2})

	tbl := Table{Header: []string{"Category", "Weight"}, Widths: []float64{0.6, 0.4}}
	for _, cat := range a.snap.Grading {
		if cat.Name != "" && cat.Weight != "" {
			tbl.Rows = append(tbl.Rows, textRow(cat.Name, cat.Weight+"%"))
		}
	}
	a.add(tbl)

	for _, cat := range a.snap.Grading {
		if cat.Name != "" && cat.Description != "" {
			spans := append([]Span{bold(cat.Name + ": ")}, RenderMarkup(cat.Description)...)
			a.add(Paragraph{Spans: spans})
		}
		a.assignmentList(cat)
	}
}

func (a *assembler) assignmentList(cat GradingCategory) {
	headed := false
	for _, asgn := range cat.Assignments {
		if asgn.Title == "" {
			continue
		}
		if !headed {
			a.add(para(bold(cat.Name + " Assignments:")))
			headed = true
		}

		line := "• " + asgn.Title
		if asgn.DueDate != "" {
			line += fmt.Sprintf(" (Due: %s)", asgn.DueDate)
		}
		if asgn.Points != "" {
			line += fmt.Sprintf(" - %s points", asgn.Points)
		}
		a.add(Paragraph{Spans: []Span{plain(line)}, Indent: 1})

		if asgn.Description != "" {
			a.add(Paragraph{Spans: []Span{plain(asgn.Description)}, Indent: 2})
		}
	}
}

func (a *assembler) gradingScale() {
	a.add(Heading{Text: "Grading Scale", Level: 2})

	tbl := Table{Header: []string{"Letter Grade", "Number Grade"}, Widths: []float64{0.5, 0.5}}
	for _, band := range GradingScale {
		tbl.Rows = append(tbl.Rows, textRow(band.Letter, band.Range))
	}
	a.add(tbl)

	a.add(para(
		plain("See the UF Catalog's "),
		link("Grades and Grading Policies", GradingPoliciesURL),
		plain(" for information on how UF assigns grade points."),
	))

	if a.snap.Policies.GradingRounding {
		a.add(para(plain(GradingRoundingStatement)))
	}
	a.add(para(plain(MinimumGradeNote)))
}

func (a *assembler) submissionInstructions() {
	a.add(Heading{Text: "Instructions for Submitting Written Assignments", Level: 1})
	a.add(para(plain(SubmissionInstructions)))
}

// resolvePolicyText implements the three-step fallback for preset-backed
// policies: explicit custom text, then the named preset's canonical
// text, then the placeholder.
func resolvePolicyText(custom, preset string, presets map[string]string, placeholder string) string {
	if custom != "" {
		return custom
	}
	if text, ok := presets[preset]; ok {
		return text
	}
	return placeholder
}

// policySubsection emits one level-2 policy heading with its text run
// through the markup renderer.
func (a *assembler) policySubsection(title, text string) {
	a.add(Heading{Text: title, Level: 2})
	a.add(Paragraph{Spans: RenderMarkup(text)})
}

// textOrDefault returns fallback when text is empty.
func textOrDefault(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}

func (a *assembler) policySubsections() {
	p := a.snap.Policies

	if p.Assessment {
		a.policySubsection("University Assessment Policies", textOrDefault(p.AssessmentText, AssessmentStatement))
	}
	if p.Extensions {
		a.policySubsection("Extensions", textOrDefault(p.ExtensionsText, ExtensionsStatement))
	}
	if p.LateSubmissions {
		a.policySubsection("Late Submissions",
			resolvePolicyText(p.LateText, p.LatePreset, LatePolicyPresets, LateNotSpecified))
	}
	if p.ExtraCredit {
		a.policySubsection("Extra Credit",
			resolvePolicyText(p.ExtraCreditText, p.ExtraCreditPreset, ExtraCreditPresets, ExtraCreditNotSpecified))
	}
	if p.Canvas {
		a.policySubsection("Canvas", textOrDefault(p.CanvasText, CanvasStatement))
	}
	if p.Technology {
		a.policySubsection("Technology in the Classroom", textOrDefault(p.TechnologyText, TechnologyStatement))
	}
	if p.Communication {
		a.policySubsection("Class Communication Policy", textOrDefault(p.CommunicationText, CommunicationStatement))
	}
	if p.OutsideSupport {
		a.policySubsection("Assignment Support Outside the Classroom", textOrDefault(p.SupportText, SupportStatement))
	}
}

func (a *assembler) evaluations() {
	a.add(Heading{Text: "IV. Evaluations", Level: 1})
	a.add(Paragraph{Spans: RenderMarkup(EvaluationsStatement)})
}

func (a *assembler) universityPolicies() {
	p := a.snap.Policies
	a.add(Heading{Text: "V. University Policies and Resources", Level: 1})

	if p.Simplified {
		a.add(para(
			plain("This course complies with all UF academic policies. For information on those polices and for resources for students, please see "),
			link("this link", SimplifiedPoliciesURL),
			plain("."),
		))
		return
	}

	a.add(Heading{Text: "Students requiring accommodation", Level: 2})
	a.add(Paragraph{Spans: autoLinkSpans(AccommodationsStatement)})

	a.add(Heading{Text: "University Honesty Policy", Level: 2})
	a.add(para(
		plain(HonestyStatement),
		link(" See the UF Conduct Code website for more information", ConductCodeURL),
		plain(HonestyStatementTail),
	))

	a.add(Heading{Text: "Plagiarism and Related Ethical Violations", Level: 2})
	a.add(para(plain(PlagiarismStatement)))

	if p.InClassRecording {
		a.policySubsection("In-Class Recording", RecordingStatement)
	}
	if p.ConflictResolution {
		a.policySubsection("Procedure for Conflict Resolution", ConflictResolutionStatement)
	}
	if p.CampusResources {
		a.policySubsection("Campus Resources", CampusResourcesStatement)
	}
	if p.AcademicResources {
		a.policySubsection("Academic Resources", AcademicResourcesStatement)
	}
}

// calendarWidths tunes the four schedule columns for the PDF sink's
// fixed-width table layout.
var calendarWidths = []float64{0.15, 0.23, 0.42, 0.20}

func (a *assembler) calendar() {
	a.add(Heading{Text: "VI. Calendar", Level: 1})

	if len(a.snap.Schedule) == 0 {
		a.add(para(plain("Schedule will be provided separately.")))
		return
	}

	tbl := Table{
		Header: []string{"Date", "Topic", "Readings/Preparation", "Work Due"},
		Widths: calendarWidths,
	}
	for _, entry := range a.snap.Schedule {
		if entry.IsEmpty() {
			continue
		}
		tbl.Rows = append(tbl.Rows, textRow(entry.Date, entry.Topic, entry.Readings, entry.WorkDue))
	}
	a.add(tbl)
}
