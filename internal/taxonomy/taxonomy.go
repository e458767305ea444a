// Package taxonomy holds the curated skill and education phrase lists that
// content matching runs against. A Taxonomy is built once at startup and
// treated as read-only afterwards, so it is safe to share across goroutines
// without locking.
package taxonomy

// Taxonomy groups the three phrase lists used for relevance matching.
// The lists serve different purposes but are not required to be disjoint
// in content.
type Taxonomy struct {
	HardSkills        []string
	SoftSkills        []string
	EducationKeywords []string
}

// Default returns the built-in taxonomy. Callers must not mutate the
// returned lists.
func Default() Taxonomy {
	return Taxonomy{
		HardSkills:        hardSkills,
		SoftSkills:        softSkills,
		EducationKeywords: educationKeywords,
	}
}

// All enumerates every phrase across the three lists, in list order:
// hard skills, then soft skills, then education keywords.
func (t Taxonomy) All() []string {
	out := make([]string, 0, len(t.HardSkills)+len(t.SoftSkills)+len(t.EducationKeywords))
	out = append(out, t.HardSkills...)
	out = append(out, t.SoftSkills...)
	out = append(out, t.EducationKeywords...)
	return out
}

var hardSkills = []string{
	// Programming languages
	"JavaScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	// Web development
	"HTML", "CSS", "React.js", "Angular", "Vue.js", "Node.js",
	// Database management
	"SQL", "NoSQL", "MySQL", "PostgreSQL", "MongoDB",
	// Version control
	"Git", "GitHub", "GitLab", "Bitbucket",
	// Software development methodologies
	"Agile", "Scrum", "Kanban", "DevOps",
	// Testing and debugging
	"Unit Testing", "Integration Testing", "Automated Testing", "Selenium", "JUnit",
	// Cloud computing
	"AWS", "Amazon Web Services", "Azure", "Google Cloud Platform", "GCP", "Cloud Security",
	// Mobile development
	"Android Development", "iOS Development", "Flutter", "React Native",
	// Data structures and algorithms
	"data structures", "arrays", "linked lists", "trees", "Algorithm design", "Algorithm analysis",
	// Software design and architecture
	"Object-Oriented Design", "OOD", "Microservices Architecture", "RESTful API Design",
	// Automation and scripting
	"Shell Scripting", "PowerShell", "Bash",
	// Security
	"Secure Coding Practices", "Penetration Testing", "Encryption",
}

var softSkills = []string{
	"communication", "effective verbal and written communication", "collaborating", "team members", "stakeholders",
	"clients", "problem-solving", "analyze issues", "develop effective solutions",
	"adaptability", "adjust to new technologies", "methodologies", "project requirements",
	"teamwork", "working well with others", "sharing knowledge", "contributing to a positive team environment",
	"time management", "prioritizing tasks", "meeting deadlines", "managing time effectively",
	"creativity", "innovative thinking", "designing unique solutions", "improving existing systems",
	"attention to detail", "precision in coding", "debugging ensures high-quality software",
	"emotional intelligence", "understanding and managing your own emotions", "empathizing with others",
	"maintaining a harmonious work environment", "critical thinking", "evaluating information",
	"making reasoned decisions", "patience", "staying calm and persistent when facing challenges or complex problems",
	"self-awareness", "recognizing your strengths", "areas for improvement", "personal and professional growth",
	"responsibility", "taking ownership of your work", "being accountable for your actions", "trust and reliability",
}

var educationKeywords = []string{
	"B.S.", "Bachelor of Science", "M.S.", "Master of Science",
	"Ph.D.", "Doctor of Philosophy", "Computer Science", "Software Engineering",
	"Bachelor’s Degree in Computer Science", "Bachelor’s Degree in Software Engineering",
	"Bachelor’s Degree in Information Technology", "Bachelor’s Degree in Computer Engineering",
	"Master’s Degree in Computer Science", "Master’s Degree in Software Engineering",
	"Master’s Degree in Information Technology", "Master’s Degree in Computer Engineering",
	"Associate Degree in Computer Science", "Associate Degree in Information Technology",
	"Associate's Degree in Computer Science", "Associate's Degree in Information Technology",
	"A.A.S.", "Associate of Applied Science", "A.S.", "Associate of Science",
	"PhD in Computer Science", "PhD in Software Engineering", "PhD in Information Technology",
	"PhD in Computer Engineering", "Data Science Certification", "Cyber Security Certification",
	"Machine Learning Certification", "Artificial Intelligence Certification",
	"Full Stack Development Bootcamp", "Front-End Development Bootcamp", "Back-End Development Bootcamp",
	"Software Development Bootcamp", "Coding Bootcamp", "Online Courses in Computer Science",
	"Online Courses in Software Development", "Online Courses in Data Science", "Online Courses in Cyber Security",
	"Online Courses in Machine Learning", "Online Courses in Artificial Intelligence",
	"Professional Development in Software Engineering", "Continuing Education in Information Technology",
	"Technical Training in Software Development",
}
