package syllabus

import "strings"

// Default text for snapshot fields left empty by the user.
const (
	DefaultDescription   = ""
	DefaultPrerequisites = "None"
	DefaultMaterialsFee  = "0.00"
)

// GenEdDesignation is the general-education designation this generator
// targets. The SLO table header adapts to it via sloHeader.
const GenEdDesignation = "Social and Behavioral Sciences (S)"

// URLs referenced by assembled sections.
const (
	GenEdObjectivesURL     = "https://undergrad.aa.ufl.edu/general-education/gen-ed-program/subject-area-objectives/"
	GradingPoliciesURL     = "https://catalog.ufl.edu/UGRD/academic-regulations/grades-grading-policies/"
	ConductCodeURL         = "https://sccr.dso.ufl.edu/process/student-conduct-code/"
	SimplifiedPoliciesURL  = "https://syllabus.ufl.edu/syllabus-policy/uf-syllabus-policy-links/"
	AttendancePoliciesURL  = "https://catalog.ufl.edu/UGRD/academic-regulations/attendance-policies/"
	DisabilityResourcesURL = "https://disability.ufl.edu/students/get-started/"
)

// GenEdStatement is the general-education designation description.
const GenEdStatement = "Social Science courses must afford students an understanding of the basic social and behavioral " +
	"science concepts and principles used in the analysis of behavior and past and present social, " +
	"political, and economic issues. Social and Behavioral Sciences (S) is a sub-designation of Social Sciences " +
	"at the University of Florida. These courses provide instruction in the history, key themes, principles, " +
	"terminology, and underlying theory or methodologies used in the social and behavioral sciences. Students " +
	"will learn to identify, describe and explain social institutions, structures or processes. These courses " +
	"emphasize the effective application of accepted problem-solving techniques. Students will apply formal " +
	"and informal qualitative or quantitative analysis to examine the processes and means by which individuals " +
	"make personal and group decisions, as well as the evaluation of opinions, outcomes or human behavior. " +
	"Students are expected to assess and analyze ethical perspectives in individual and societal decisions."

// SubmissionInstructions always appears under its own heading.
const SubmissionInstructions = "All written assignments must be submitted as Word documents (.doc or .docx) " +
	"through the \"Assignments\" portal in Canvas by the specified deadlines. Do NOT send assignments as PDF files."

// MinimumGradeNote always follows the grading scale.
const MinimumGradeNote = "Note: A minimum grade of C is required to earn General Education credit."

// GradingRoundingStatement appears when the rounding policy is enabled.
const GradingRoundingStatement = "All non-whole number grades .5 and above will be rounded up " +
	"(for example, an 89.5 will be rounded up to a 90)."

// Policy section default texts.
const (
	AccommodationsStatement = "Students with disabilities who experience learning barriers and would like to request " +
		"academic accommodations should connect with the Disability Resource Center by visiting " +
		"https://disability.ufl.edu/students/get-started/. It is important for students to share their " +
		"accommodation letter with the instructor and discuss their access needs as early as possible in the semester."

	HonestyStatement = "UF students are bound by The Honor Pledge which states \"We, the members of the University of " +
		"Florida community, pledge to hold ourselves and our peers to the highest standards of honor and integrity by " +
		"abiding by the Honor Code.\" On all work submitted for credit by students at the University of Florida, the " +
		"following pledge is either required or implied: \"On my honor, I have neither given nor received unauthorized " +
		"aid in doing this assignment.\" The Conduct Code specifies a number of behaviors that are in violation of this " +
		"code and the possible sanctions."

	HonestyStatementTail = ". If you have any questions or concerns, please consult with the instructor or TAs in this class."

	PlagiarismStatement = "Ethical violations such as plagiarism, cheating, academic misconduct (e.g. passing off " +
		"others' work as your own, reusing old assignments, etc.) will not be tolerated and will result in a failing " +
		"grade in this course. Students must be especially wary of plagiarism. The UF Student Honor Code defines " +
		"plagiarism as follows: A student shall not represent as the student's own work all or any portion of the work " +
		"of another. Plagiarism includes (but is not limited to): a. Quoting oral or written materials, whether " +
		"published or unpublished, without proper attribution. b. Submitting a document or assignment which in whole or " +
		"in part is identical or substantially identical to a document or assignment not authored by the student. " +
		"Note that plagiarism also includes the use of any artificial intelligence programs, such as ChatGPT. "

	RecordingStatement = "Students are allowed to record video or audio of class lectures. However, the purposes for " +
		"which these recordings may be used are strictly controlled. The only allowable purposes are " +
		"(1) for personal educational use, (2) in connection with a complaint to the university, or " +
		"(3) as evidence in, or in preparation for, a criminal or civil proceeding. All other purposes " +
		"are prohibited. Specifically, students may not publish recorded lectures without the written " +
		"consent of the instructor.\n\n" +
		"A \"class lecture\" is an educational presentation intended to inform or teach enrolled students " +
		"about a particular subject, including any instructor-led discussions that form part of the " +
		"presentation, and delivered by any instructor hired or appointed by the University, or by a " +
		"guest instructor, as part of a University of Florida course.\n\n" +
		"Publication without permission of the instructor is prohibited. To \"publish\" means to share, " +
		"transmit, circulate, distribute, or provide access to a recording, regardless of format or " +
		"medium, to another person (or persons), including but not limited to another student within " +
		"the same class section. A student who publishes a recording without written consent may be " +
		"subject to a civil cause of action instituted by a person injured by the publication and/or " +
		"discipline under UF Regulation 4.040 Student Honor Code and Student Conduct Code."

	ConflictResolutionStatement = "Any classroom issues, disagreements or grade disputes should be discussed first " +
		"between the instructor and the student. If the problem cannot be resolved, please contact Nina Caputo " +
		"(Associate Chair) "

	CanvasStatement = "Class announcements will be made through Canvas, and all papers must be turned in via Canvas. " +
		"Class handouts, lecture slides, assignment rubrics, readings, study guides, a writing sample, and a copy of " +
		"this syllabus are on our Canvas site. Check your Canvas inbox daily, and read all Canvas announcements."

	TechnologyStatement = "To respect a wide range of learning styles, I will permit the use of tablets and laptops " +
		"in class so long as they do not distract you or your fellow students. However, abuses of this technology " +
		"policy will be taken seriously. Students disrupting the lecture may be asked to leave, and anyone caught " +
		"using tablets or laptops for purposes unrelated to the course during a discussion section will receive an " +
		"unexcused absence and a failing participation grade for that meeting. No computers or laptops are allowed on " +
		"exam days, and those who repeatedly violate the technology policy will be barred from bringing laptops and " +
		"tablets to class. Cellphones should be on vibrate. "

	CommunicationStatement = "The best way to get in contact with your professor or TA is through our UF emails, " +
		"listed on the front page of the syllabus. We will do our best to reply within one business day, but there " +
		"may be periods when we are slower to respond due to high email volume. Please also note that we will not " +
		"answer emails at night, over weekends, or during university-scheduled holidays. Finally, when you email the " +
		"professor, please carbon copy (cc) your TA to streamline communication."

	SupportStatement = "You are welcome to come to regular office hours or to schedule an individual appointment " +
		"with your professor or TA. When needed, I also encourage you to seek support from the academic resources " +
		"listed on this syllabus. "

	AssessmentStatement = "Requirements for class attendance and make-up exams, assignments, and other work in this " +
		"course are consistent with university policies that can be found at " +
		"https://catalog.ufl.edu/UGRD/academic-regulations/attendance-policies/."

	ExtensionsStatement = "Extensions on graded work may be granted at the instructor's discretion in cases of " +
		"documented emergency or illness. Requests should be made before the deadline whenever possible."

	EvaluationsStatement = "Students are expected to provide professional and respectful feedback on the quality of " +
		"instruction by completing **course evaluations** online via GatorEvals. Evaluations can be done via the email " +
		"link from GatorEvals, the link in Canvas, or by logging in to the GatorEvals portal. Students will be notified " +
		"when the evaluation period opens, and can view summary results of past evaluations on the GatorEvals website."

	CampusResourcesStatement = `U Matter, We Care: If you or someone you know is in distress, please contact umatter@ufl.edu, 352-392-1575, or visit U Matter, We Care website to refer or report a concern and a team member will reach out to the student in distress.

Counseling and Wellness Center: Visit the Counseling and Wellness Center website or call 352-392-1575 for information on crisis services as well as non-crisis services.

Student Health Care Center: Call 352-392-1161 for 24/7 information to help you find the care you need, or visit the Student Health Care Center website.

University Police Department: Visit UF Police Department website or call 352-392-1111 (or 9-1-1 for emergencies).

UF Health Shands Emergency Room / Trauma Center: For immediate medical care call 352-733-0111 or go to the emergency room at 1515 SW Archer Road, Gainesville, FL 32608; Visit the UF Health Emergency Room and Trauma Center website.

GatorWell Health Promotion Services: For prevention services focused on optimal wellbeing, including Wellness Coaching for Academic Success, visit the GatorWell website or call 352-273-4450.

Student Success Initiative, https://studentsuccess.ufl.edu/.

Field and Fork Pantry. Food and toiletries for students experiencing food insecurity.

Dean of Students Office. 202 Peabody Hall, 392-1261. Among other services, the DSO assists students who are experiencing situations that compromises their ability to attend classes. This includes family emergencies and medical issues (including mental health crises).`

	AcademicResourcesStatement = `E-learning technical support: Contact the UF Computing Help Desk at 352-392-4357 or via e-mail at helpdesk@ufl.edu.

Career Connections Center: Reitz Union Suite 1300, 352-392-1601. Career assistance and counseling services.

Library Support: Various ways to receive assistance with respect to using the libraries or finding resources.

Teaching Center: Broward Hall, 352-392-2010 or to make an appointment 352- 392-6420. General study skills and tutoring.

Writing Studio: 2215 Turlington Hall, 352-846-1138. Help brainstorming, formatting, and writing papers.

Student Complaints On-Campus: Visit the Student Honor Code and Student Conduct Code webpage for more information.

On-Line Students Complaints: View the Distance Learning Student Complaint Process.`
)

// Placeholder texts emitted when a policy is enabled but neither custom
// text nor a known preset is available.
const (
	LateNotSpecified        = "Late submission policy not specified."
	ExtraCreditNotSpecified = "Extra credit policy not specified."
)

// Custom preset defaults, shown when the "Custom" preset is selected
// without further editing.
const (
	defaultLateCustomText = "Late assignments will be penalized 10% per day late unless prior arrangements have " +
		"been made with the instructor due to documented emergency or illness. Contact instructor as soon as " +
		"possible if you anticipate being unable to meet a deadline."

	defaultExtraCreditCustomText = "Extra credit opportunities may be available at the instructor's discretion. " +
		"These will be announced in class and posted on Canvas when available."
)

// LatePolicyPresets maps late-submission preset names to their canonical text.
var LatePolicyPresets = map[string]string{
	"Standard (10% per day)": "Unless an extension is granted, assignments will incur a 10-point penalty for every day they are late.",
	"No late work":           "No late work will be accepted without prior approval.",
	"48-hour grace":          "Students have a 48-hour grace period for submissions, after which no late work will be accepted.",
	"Custom":                 defaultLateCustomText,
}

// ExtraCreditPresets maps extra-credit preset names to their canonical text.
var ExtraCreditPresets = map[string]string{
	"Standard":             "Extra credit opportunities may be announced during the semester. Points will be added to your mid-term exam grade.",
	"No extra credit":      "No extra credit will be offered in this course.",
	"Optional assignments": "Students may complete optional assignments for extra credit, worth up to 3% of the final grade.",
	"Custom":               defaultExtraCreditCustomText,
}

// DefaultOutcomes is used when the snapshot supplies no student
// learning outcomes.
var DefaultOutcomes = []string{
	"Describe the factual details of the substantive historical episodes under study.",
	"Identify and analyze foundational developments that shaped history using critical thinking skills.",
	"Demonstrate an understanding of the primary ideas, values, and perceptions that have shaped history.",
	"Demonstrate competency in civic literacy.",
}

// GradeBand is one row of the fixed grading scale.
type GradeBand struct {
	Letter string
	Range  string
}

// GradingScale is the fixed letter-to-percentage mapping.
var GradingScale = []GradeBand{
	{"A", "100-93"},
	{"A-", "92-90"},
	{"B+", "89-87"},
	{"B", "86-83"},
	{"B-", "82-80"},
	{"C+", "79-77"},
	{"C", "76-73"},
	{"C-", "72-70"},
	{"D+", "69-67"},
	{"D", "66-63"},
	{"D-", "62-60"},
	{"E", "59-0"},
}

// DefaultLearningObjectives fills the general-education objectives table
// when the snapshot supplies no rows of its own.
func DefaultLearningObjectives() []LearningObjective {
	return []LearningObjective{
		{
			Category: "Content",
			SLO: "Identify, describe, and explain key themes, principles, and terminology; the history, theory " +
				"and/or methodologies used; and social institutions, structures and processes.",
			Assignments: "Outcomes 1-4\n\nStudents will demonstrate their knowledge of the details of the substantive " +
				"historical episodes by analyzing primary and secondary sources in short papers, homework assignments, " +
				"exams, and in-class discussion.",
		},
		{
			Category: "Critical Thinking",
			SLO: "Apply formal and informal qualitative or quantitative analysis effectively to examine the processes " +
				"and means by which individuals make personal and group decisions. Assess and analyze ethical " +
				"perspectives in individual and societal decisions.",
			Assignments: "Outcomes 1-4\n\nStudents will demonstrate their ability in applying qualitative and " +
				"quantitative methods by analyzing primary and secondary sources in short papers, homework " +
				"assignments, and exams by using critical thinking skills.",
		},
		{
			Category: "Communication",
			SLO:      "Communication is the development and expression of ideas in written and oral forms.",
			Assignments: "Outcomes 1-4\n\nStudents will identify and explain key developments that shaped history in " +
				"written assignments and class discussion.\n\nStudents will demonstrate their understandings of the " +
				"primary ideas, values, and perceptions that have shaped history and will describe them in written " +
				"assignments, exams, and class discussion.",
		},
	}
}

// sloHeader returns the second column header of the objectives table
// for a given general-education designation.
func sloHeader(designation string) string {
	switch {
	case strings.Contains(designation, "Humanities"):
		return "HUMANITIES SLOS"
	case strings.Contains(designation, "International"):
		return "INTERNATIONAL SLOS"
	case strings.Contains(designation, "Diversity"):
		return "DIVERSITY SLOS"
	case strings.Contains(designation, "Biological"):
		return "BIOLOGICAL SCIENCES SLOS"
	case strings.Contains(designation, "Physical"):
		return "PHYSICAL SCIENCES SLOS"
	case strings.Contains(designation, "Mathematics"):
		return "MATHEMATICS SLOS"
	default:
		return "SOCIAL SCIENCE SLOS"
	}
}
