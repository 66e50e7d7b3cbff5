// Package templates provides the built-in course templates and
// snapshot persistence.
//
// A template is an ordinary syllabus snapshot with course-level fields
// pre-filled; instructor and staff fields are left blank for the user
// except in the TEST1000 template, which is fully populated for smoke
// testing the document pipeline.
//
// Snapshots round-trip through JSON or YAML files; the format is picked
// from the file extension.
package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avolette/go-syllabus"
	"github.com/avolette/go-syllabus/internal/yamlutil"
)

var (
	// ErrUnknownTemplate indicates the requested built-in template does not exist.
	ErrUnknownTemplate = errors.New("templates: unknown template")
	// ErrUnsupportedFormat indicates a snapshot file extension that is
	// neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("templates: unsupported snapshot format")
)

// Names returns the built-in template names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a deep copy of the named built-in template, so callers
// can mutate the result freely.
func Get(name string) (*syllabus.Snapshot, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	snap := build()
	return &snap, nil
}

// Load reads a snapshot from a JSON or YAML file, dispatching on the
// file extension.
func Load(path string) (*syllabus.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("templates: read snapshot: %w", err)
	}

	var snap syllabus.Snapshot
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yamlutil.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &snap, nil
}

// Save writes a snapshot to a JSON or YAML file, dispatching on the
// file extension.
func Save(snap *syllabus.Snapshot, path string) error {
	if snap == nil {
		return syllabus.ErrNilSnapshot
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(snap, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case ".yaml", ".yml":
		data, err = yamlutil.Marshal(snap)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("templates: encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("templates: write snapshot: %w", err)
	}
	return nil
}

// builtins maps template names to constructors. Constructors return
// values, not pointers, so every Get hands out an independent copy.
var builtins = map[string]func() syllabus.Snapshot{
	"AMH2010":  amh2010,
	"AMH2020":  amh2020,
	"TEST1000": test1000,
}

const objectivityNote = "NOTE: All topics in this course will be taught objectively as objects of analysis, " +
	"without endorsement of particular viewpoints, and will be observed from multiple perspectives. " +
	"No lesson is intended to espouse, promote, advance, inculcate, or compel a particular feeling, perception, " +
	"or belief. Students are encouraged to employ critical thinking and to rely on data and verifiable sources " +
	"to explore readings and subject matter in this course. All perspectives will be respected in class discussions."

const (
	customLateText = "Late assignments will be penalized 10% per day late unless prior arrangements have been " +
		"made with the instructor due to documented emergency or illness. Contact instructor as soon as possible " +
		"if you anticipate being unable to meet a deadline."

	customExtraCreditText = "Extra credit opportunities may be available at the instructor's discretion. " +
		"These will be announced in class and posted on Canvas when available."
)

// defaultPolicies is the policy selection templates start from: every
// optional section enabled, simplified mode off.
func defaultPolicies() syllabus.Policies {
	return syllabus.Policies{
		ShowGenEd:          true,
		Assessment:         true,
		LateSubmissions:    true,
		ExtraCredit:        true,
		Canvas:             true,
		Technology:         true,
		Communication:      true,
		OutsideSupport:     true,
		InClassRecording:   true,
		ConflictResolution: true,
		CampusResources:    true,
		AcademicResources:  true,
	}
}

func amh2010() syllabus.Snapshot {
	pol := defaultPolicies()
	pol.LatePreset = "Custom"
	pol.LateText = customLateText
	pol.ExtraCreditPreset = "Custom"
	pol.ExtraCreditText = customExtraCreditText

	return syllabus.Snapshot{
		Course: syllabus.CourseInfo{
			Number:        "AMH2010",
			Title:         "United States History to 1877",
			Term:          "Spring 2025",
			Credits:       "3",
			Prerequisites: "None.",
			MeetingTimes:  "M, W 12:50p - 1:40p",
			Location:      "MCCC 0100",
			Description: "Examine United States history from before European contact to 1877. Topics include " +
				"but are not limited to indigenous peoples, the European background, the colonial period, the " +
				"American Revolution, the Articles of Confederation, the Constitution, issues within the new " +
				"Republic, sectionalism, manifest destiny, slavery, the American Civil War, and Reconstruction.\n\n" +
				objectivityNote,
			Objectives: []string{
				"Analyze primary and secondary sources to understand various historical interpretations and perspectives on significant events, individuals, and movements in early American history.",
				"Develop critical thinking skills by evaluating evidence, making connections between historical events, and synthesizing information to form reasoned arguments and interpretations.",
				"Analyze historical patterns and trends, identify causes and consequences of historical developments, and assess their significance in shaping the course of American history.",
				"Explore experiences, perspectives, and identities of people in early America, including indigenous peoples, European settlers, enslaved Africans, and other marginalized groups.",
				"Examine the evolution of political institutions, ideologies, and movements in the United States, including the development of colonial governments, the American Revolution, the Constitution, and the Civil War.",
				"Investigate social and economic transformations in early America, including the impact of colonialism, westward expansion, industrialization, slavery, and the market revolution.",
				"Explore the role of religion, philosophy, and intellectual trends in shaping American society and culture, including the influence of religious beliefs on colonial settlements, Enlightenment ideas, and reform movements.",
				"Develop research and writing skills by conducting historical research, analyzing primary sources, and effectively communicating their findings through written assignments and presentations.",
			},
		},
		Outcomes: []string{
			"Students will describe the factual details of the substantive historical episodes under study.",
			"Students will identify and analyze foundational developments that shaped American history from before European contact to 1877 using critical thinking skills.",
			"Students will demonstrate an understanding of the primary ideas, values, and perceptions that have shaped united states history.",
			"Students will demonstrate competency in civic literacy.",
		},
		Objectives: []syllabus.LearningObjective{
			{
				Category:    "Content",
				SLO:         "Identify, describe, and explain key themes, principles, and terminology; the history, theory and/or methodologies used; and social institutions, structures and processes.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will demonstrate their understanding of foundational developments that " +
					"shaped American history from before European contact to 1877 by analyzing primary and secondary " +
					"sources in short papers, exams, and through in-class discussion.",
			},
			{
				Category:    "Critical Thinking",
				SLO:         "Apply formal and informal qualitative or quantitative analysis effectively to examine the processes and means by which individuals make personal and group decisions. Assess and analyze ethical perspectives in individual and societal decisions.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will demonstrate their ability in qualitative and quantitative methods by " +
					"examining primary and secondary sources in short writing assignments, in-class exams, and class " +
					"discussions, students by using critical thinking skills.",
			},
			{
				Category:    "Communication",
				SLO:         "Communication is the development and expression of ideas in written and oral forms.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will identify and analyze foundational developments that shaped American " +
					"history from before European contact to 1877 in written assignments and class discussion.\n\n" +
					"Students will demonstrate an understanding of the primary ideas, values, and perceptions that " +
					"have shaped United States history and will describe them in  written assignments, periodic exams " +
					"and class discussion.",
			},
		},
		Policies: pol,
	}
}

func amh2020() syllabus.Snapshot {
	pol := defaultPolicies()
	pol.LatePreset = "Custom"
	pol.LateText = customLateText
	pol.ExtraCreditPreset = "Custom"
	pol.ExtraCreditText = customExtraCreditText

	return syllabus.Snapshot{
		Course: syllabus.CourseInfo{
			Number:        "AMH2020",
			Title:         "United States Since 1877",
			Term:          "Spring 2025",
			Credits:       "3",
			Prerequisites: "None.",
			MeetingTimes:  "M, W 12:50p - 1:40p",
			Location:      "MCCC 0100",
			Description: "In this course, students will trace the history of the United States from the end of " +
				"the Reconstruction era to the contemporary era. Topics will include but are not limited to the " +
				"rise of Industrialization, the United States' emergence as an actor on the world stage, " +
				"Constitutional amendments and their impact, the Progressive era, World War I, the Great Depression " +
				"and New Deal, World War II, the Civil Rights era, the Cold War, and the United States since 1989.\n\n" +
				objectivityNote,
			Objectives: []string{
				"Address how the Civil War and Reconstruction set the stage for the development of the modern United States.",
				"Explore how US involvement in the Spanish-American War, World War One, and World War Two reshaped US foreign policy and civil society.",
				"Present the origins of the Cold War, its implications for US international relations, and its influence on American political culture.",
				"Enable students to analyze and evaluate the origins and influences of the civil rights movement, the Vietnam War, the women's movement, and New Right conservatism.",
				"Teach students how to analyze historical documents and scholarship from a range of authors and time periods.",
			},
		},
		Outcomes: []string{
			"Describe the factual details of the substantive historical episodes under study.",
			"Identify and analyze foundational developments that shaped American history since 1877 using critical thinking skills.",
			"Demonstrate an understanding of the primary ideas, values, and perceptions that have shaped American history.",
			"Demonstrate competency in civic literacy.",
		},
		Objectives: []syllabus.LearningObjective{
			{
				Category:    "Content",
				SLO:         "Identify, describe, and explain key themes, principles, and terminology; the history, theory and/or methodologies used; and social institutions, structures and processes.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will demonstrate their knowledge of the details of the substantive " +
					"historical episodes of US History since 1877 by analyzing primary and secondary sources in " +
					"short papers, homework assignments, exams, and in-class discussion.",
			},
			{
				Category:    "Critical Thinking",
				SLO:         "Apply formal and informal qualitative or quantitative analysis effectively to examine the processes and means by which individuals make personal and group decisions. Assess and analyze ethical perspectives in individual and societal decisions.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will demonstrate their ability in applying qualitative and quantitative " +
					"methods by analyzing primary and secondary sources in short papers, homework assignments, and " +
					"exams by using critical thinking skills.",
			},
			{
				Category:    "Communication",
				SLO:         "Communication is the development and expression of ideas in written and oral forms.",
				Assignments: "Outcomes 1-4",
				CourseSpecific: "Students will identify and explain key developments that shaped United States " +
					"history since 1877 in written assignments and class discussion.\n\n" +
					"Students will demonstrate their understandings of the primary ideas, values, and perceptions " +
					"that have shaped United States history and will describe them in written assignments, exams, " +
					"and class discussion.",
			},
		},
		Policies: pol,
	}
}

func test1000() syllabus.Snapshot {
	pol := defaultPolicies()
	pol.LatePreset = "Standard (10% per day)"
	pol.ExtraCreditPreset = "Standard"

	return syllabus.Snapshot{
		Course: syllabus.CourseInfo{
			Number:        "TEST1000",
			Title:         "TEST TEMPLATE",
			Term:          "Spring 2025",
			Credits:       "3",
			Prerequisites: "HIS100 or instructor permission",
			MeetingTimes:  "MWF 10:00 AM - 10:50 AM",
			Location:      "History Building 202",
			Description:   "This is a test template for the History Syllabus Generator.",
			Objectives: []string{
				"Understand the principles of historical research.",
				"Develop critical thinking skills through analysis of primary sources.",
				"Learn to construct historical arguments based on evidence.",
			},
		},
		Instructor: syllabus.InstructorInfo{
			Name:        "Dr. Jane Doe",
			Office:      "Room 123, History Building",
			Phone:       "555-123-4567",
			Email:       "jane.doe@university.edu",
			OfficeHours: "MWF 2:00 PM - 4:00 PM",
		},
		Staff: []syllabus.StaffSection{
			{
				Name:        "John Smith",
				Email:       "john.smith@university.edu",
				OfficeHours: "TTh 10:00 AM - 12:00 PM",
			},
			{
				Name:        "Emily Johnson",
				Email:       "emily.johnson@university.edu",
				OfficeHours: "MW 1:00 PM - 3:00 PM",
			},
		},
		Outcomes: []string{
			"Demonstrate ability to analyze primary sources.",
			"Write clear and coherent historical essays.",
			"Present research findings effectively.",
		},
		Objectives: []syllabus.LearningObjective{
			{
				Category:       "Content",
				SLO:            "Identify, describe, and explain key themes, principles, and terminology; the history, theory and/or methodologies used; and social institutions, structures and processes.",
				Assignments:    "Outcomes 1-4",
				CourseSpecific: "Students will analyze primary and secondary sources in short papers, homework assignments, exams, and in-class discussion.",
			},
			{
				Category:       "Critical Thinking",
				SLO:            "Apply formal and informal qualitative or quantitative analysis effectively to examine the processes and means by which individuals make personal and group decisions. Assess and analyze ethical perspectives in individual and societal decisions.",
				Assignments:    "Outcomes 1-4",
				CourseSpecific: "Students will apply critical thinking skills in written assignments and exams.",
			},
			{
				Category:       "Communication",
				SLO:            "Communication is the development and expression of ideas in written and oral forms.",
				Assignments:    "Outcomes 1-4",
				CourseSpecific: "Students will present research findings and participate in class discussions.",
			},
		},
		Schedule: []syllabus.ScheduleEntry{
			{
				Date:     "January 13, 2025",
				Topic:    "Syllabus Review; Reconstruction",
				Readings: "AMH 2020 Syllabus [825 words]\n'Reconstruction,' Chapter 15, American Yawp [10390 words]",
				WorkDue:  "Syllabus Quiz due by 11:59pm",
			},
			{
				Date:     "January 15, 2025",
				Topic:    "Reconstruction",
				Readings: "Frederick Douglass, 'Remembering the Civil War' (1878)\npp. canonsociety.org/the-civil-war-1867 [1006 words]",
				WorkDue:  "Reading Response #1",
			},
			{
				Date:     "January 17, 2025",
				Topic:    "TA Session #1",
				Readings: "All January 15 Readings",
				WorkDue:  "Discussion Board Post",
			},
			{
				Date:     "January 20, 2025",
				Topic:    "No Class (Holiday)",
				Readings: "No readings assigned",
				WorkDue:  "None",
			},
			{
				Date:     "January 22, 2025",
				Topic:    "The New South",
				Readings: "Henry Grady, 'The New South' Speech (1886)\nAmerican Yawp, Chapter 16 excerpt",
				WorkDue:  "Short Essay #1 due",
			},
			{
				Date:     "January 24, 2025",
				Topic:    "TA Session #2",
				Readings: "All January 22 Readings",
				WorkDue:  "Quiz #1",
			},
			{
				Date:     "January 27, 2025",
				Topic:    "Gilded Age Politics",
				Readings: "American Yawp, Chapter 18\nSelections from Nast Cartoons",
				WorkDue:  "Reading Response #2",
			},
			{
				Date:     "January 29, 2025",
				Topic:    "Labor in the Gilded Age",
				Readings: "Jacob Riis, 'The Working Girls of New York'\nAmerican Yawp, Chapter 18 (cont.)",
				WorkDue:  "Short Essay #2 due",
			},
		},
		Policies: pol,
	}
}
