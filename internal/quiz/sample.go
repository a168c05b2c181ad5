package quiz

import (
	"sort"
	"strings"
)

// Built-in quizzes for demos and first runs. Keyed by display title.
var samples = map[string]Quiz{
	"CNC Manufacturing Fundamentals": {
		Title:       "CNC Manufacturing Fundamentals",
		Description: "Test your knowledge of CNC machining and manufacturing processes",
		Questions: []Question{
			{
				Text:        "What does CNC stand for?",
				Options:     []string{"Computer Numerical Control", "Central Network Computer", "Computerized Navigation Center", "Control Number Code"},
				Correct:     0,
				Explanation: "CNC stands for Computer Numerical Control, which refers to the automated control of machining tools by means of a computer.",
			},
			{
				Text:        "Which G-code is typically used for rapid positioning?",
				Options:     []string{"G00", "G01", "G02", "G03"},
				Correct:     0,
				Explanation: "G00 is the rapid positioning command that moves the tool at maximum speed to a specified position without cutting.",
			},
			{
				Text:        "What is the primary purpose of coolant in CNC machining?",
				Options:     []string{"To make the machine run faster", "To reduce heat and remove chips", "To increase tool sharpness", "To reduce machine noise"},
				Correct:     1,
				Explanation: "Coolant serves to reduce heat generated during cutting and helps flush away chips from the cutting area.",
			},
			{
				Text:        "How many axes does a standard 5-axis CNC machine have?",
				Options:     []string{"3 linear axes only", "2 linear and 3 rotary axes", "3 linear and 2 rotary axes", "5 linear axes"},
				Correct:     2,
				Explanation: "A 5-axis CNC machine has 3 linear axes (X, Y, Z) and 2 rotary axes (typically A and B or A and C).",
			},
			{
				Text:        "What does CAM software stand for?",
				Options:     []string{"Computer Aided Machining", "Central Axis Management", "Computer Aided Manufacturing", "Controlled Automation Module"},
				Correct:     2,
				Explanation: "CAM stands for Computer Aided Manufacturing, software used to generate toolpaths and G-code from CAD models.",
			},
		},
	},
	"Project Management Essentials": {
		Title:       "Project Management Essentials",
		Description: "Essential concepts for effective project management",
		Questions: []Question{
			{
				Text:        "What does SMART stand for in SMART goals?",
				Options:     []string{"Strategic, Managed, Achievable, Realistic, Timed", "Specific, Measurable, Achievable, Relevant, Time-bound", "Simple, Meaningful, Actionable, Reasonable, Targeted", "Structured, Monitored, Attainable, Resourced, Tracked"},
				Correct:     1,
				Explanation: "SMART goals are Specific, Measurable, Achievable, Relevant, and Time-bound.",
			},
			{
				Text:        "What are the three constraints in the project management triangle?",
				Options:     []string{"People, Process, Technology", "Plan, Execute, Monitor", "Scope, Time, Cost", "Quality, Risk, Resources"},
				Correct:     2,
				Explanation: "The classic project management triangle consists of Scope, Time, and Cost constraints.",
			},
			{
				Text:        "Which project management methodology uses sprints?",
				Options:     []string{"Waterfall", "Agile/Scrum", "Six Sigma", "PRINCE2"},
				Correct:     1,
				Explanation: "Agile/Scrum methodology uses sprints, which are fixed-length iterations typically lasting 2-4 weeks.",
			},
			{
				Text:        "What is a Gantt chart primarily used for?",
				Options:     []string{"Budget tracking", "Risk assessment", "Schedule visualization", "Quality control"},
				Correct:     2,
				Explanation: "A Gantt chart is primarily used for schedule visualization, showing project tasks over time.",
			},
			{
				Text:        "What does WBS stand for?",
				Options:     []string{"Work Breakdown Structure", "Weekly Business Summary", "Workflow Balance System", "Working Budget Statement"},
				Correct:     0,
				Explanation: "WBS stands for Work Breakdown Structure, a hierarchical decomposition of project deliverables.",
			},
		},
	},
	"Safety Protocols Quiz": {
		Title:       "Safety Protocols Quiz",
		Description: "Workplace safety and OSHA compliance basics",
		Questions: []Question{
			{
				Text:        "What does PPE stand for?",
				Options:     []string{"Personal Protection Equipment", "Personal Protective Equipment", "Professional Protection Equipment", "Protective Personal Equipment"},
				Correct:     1,
				Explanation: "PPE stands for Personal Protective Equipment, which includes items worn to minimize exposure to hazards.",
			},
			{
				Text:        "What is the purpose of a lockout/tagout procedure?",
				Options:     []string{"To secure the building", "To prevent unauthorized machine startup during maintenance", "To track tool inventory", "To schedule maintenance"},
				Correct:     1,
				Explanation: "Lockout/tagout procedures prevent unexpected machine startup or energy release during servicing and maintenance.",
			},
			{
				Text:        "What does SDS stand for in workplace safety?",
				Options:     []string{"Safety Data Sheet", "Standard Documentation System", "Safety Department Standards", "Secure Data Storage"},
				Correct:     0,
				Explanation: "SDS stands for Safety Data Sheet, which provides information about chemical hazards and safe handling procedures.",
			},
			{
				Text:        "What is the recommended lifting technique to prevent back injury?",
				Options:     []string{"Bend at the waist", "Lift with your legs, not your back", "Twist while lifting", "Hold breath while lifting"},
				Correct:     1,
				Explanation: "Proper lifting technique involves bending at the knees and lifting with leg muscles while keeping the back straight.",
			},
			{
				Text:        "How often should fire extinguishers be inspected?",
				Options:     []string{"Annually", "Monthly", "Weekly", "Only after use"},
				Correct:     1,
				Explanation: "Fire extinguishers should be visually inspected monthly and receive professional maintenance annually.",
			},
		},
	},
	"Basic Python Programming": {
		Title:       "Basic Python Programming",
		Description: "Fundamental concepts in Python programming",
		Questions: []Question{
			{
				Text:        "Which of the following is used to define a function in Python?",
				Options:     []string{"function", "def", "func", "define"},
				Correct:     1,
				Explanation: "The 'def' keyword is used to define a function in Python.",
			},
			{
				Text:        "What data type is [1, 2, 3] in Python?",
				Options:     []string{"Tuple", "Set", "List", "Dictionary"},
				Correct:     2,
				Explanation: "Square brackets [] denote a list in Python, which is a mutable, ordered collection.",
			},
			{
				Text:        "Which operator is used for exponentiation in Python?",
				Options:     []string{"^", "**", "^^", "exp()"},
				Correct:     1,
				Explanation: "The ** operator is used for exponentiation in Python (e.g., 2**3 equals 8).",
			},
			{
				Text:        "What is the output of print(type(5))?",
				Options:     []string{"<class 'float'>", "<class 'int'>", "<class 'number'>", "<class 'digit'>"},
				Correct:     1,
				Explanation: "The number 5 is an integer, so type(5) returns <class 'int'>.",
			},
			{
				Text:        "Which statement is used to handle exceptions in Python?",
				Options:     []string{"try/except", "catch/throw", "error/handle", "test/fail"},
				Correct:     0,
				Explanation: "Python uses try/except blocks to handle exceptions and errors in code.",
			},
		},
	},
}

// SampleNames lists the built-in quizzes in stable order.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sample returns a copy of a built-in quiz. The name matches a catalog
// title exactly, or by unique case-insensitive fragment ("safety" finds
// "Safety Protocols Quiz"). Mutating the copy never touches the catalog.
func Sample(name string) (*Quiz, bool) {
	src, ok := samples[name]
	if !ok {
		matches := 0
		for title, qz := range samples {
			if strings.Contains(strings.ToLower(title), strings.ToLower(name)) {
				src, matches = qz, matches+1
			}
		}
		if matches != 1 {
			return nil, false
		}
	}
	cp := src
	cp.Questions = make([]Question, len(src.Questions))
	for i, q := range src.Questions {
		q.Options = append([]string(nil), q.Options...)
		cp.Questions[i] = q
	}
	return &cp, true
}
