// Package skills is the static skill taxonomy: the fixed category
// lists offered by the selection widget, and the category→display-class
// mapping used to color skill tags consistently across the directory
// and the admin panel.
package skills

// Category is a named group of canonical skill labels.
type Category struct {
	Name   string
	Skills []string
}

// Categories is the fixed, ordered taxonomy. Order matters for display
// grouping; Classify uses its own priority order below.
var Categories = []Category{
	{Name: "Frontend Development", Skills: []string{
		"React", "Vue.js", "Angular", "HTML/CSS", "JavaScript", "TypeScript",
		"Next.js", "Nuxt.js", "Svelte", "jQuery", "Bootstrap", "Tailwind CSS",
	}},
	{Name: "Backend Development", Skills: []string{
		"Node.js", "Python", "Java", "C#", "PHP", "Ruby", "Go", "Rust",
		"Express.js", "Django", "Flask", "Spring Boot", "Laravel", "FastAPI",
	}},
	{Name: "Mobile Development", Skills: []string{
		"React Native", "Flutter", "Android (Java/Kotlin)", "iOS (Swift)",
		"Xamarin", "Ionic", "PhoneGap", "Native Script",
	}},
	{Name: "AI/ML", Skills: []string{
		"Machine Learning", "Deep Learning", "Computer Vision", "NLP",
		"TensorFlow", "PyTorch", "Scikit-learn", "Keras", "OpenCV",
		"Data Science", "Data Analytics", "Big Data",
	}},
	{Name: "Database", Skills: []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"Microsoft SQL Server", "Firebase", "DynamoDB", "Elasticsearch",
	}},
	{Name: "Cloud & DevOps", Skills: []string{
		"AWS", "Google Cloud", "Azure", "Docker", "Kubernetes", "Jenkins",
		"GitHub Actions", "Terraform", "Ansible", "Linux", "CI/CD",
	}},
	{Name: "Design", Skills: []string{
		"UI/UX Design", "Figma", "Adobe XD", "Sketch", "Photoshop",
		"Illustrator", "Prototyping", "User Research", "Wireframing",
	}},
	{Name: "Other Technical", Skills: []string{
		"Blockchain", "Cybersecurity", "IoT", "AR/VR", "Game Development",
		"API Development", "Microservices", "GraphQL", "WebRTC", "WebAssembly",
	}},
	{Name: "Soft Skills", Skills: []string{
		"Team Leadership", "Project Management", "Communication",
		"Problem Solving", "Critical Thinking", "Presentation",
		"Business Analysis", "Product Management", "Agile/Scrum",
	}},
}

// Display-class tokens returned by Classify.
const (
	ClassFrontend = "skill-frontend"
	ClassBackend  = "skill-backend"
	ClassMobile   = "skill-mobile"
	ClassAI       = "skill-ai"
	ClassDesign   = "skill-design"
	ClassOther    = "skill-other"
)

// classifyOrder is the priority order of categories that map to a
// dedicated class. Everything else (including user-entered custom
// skills) falls through to ClassOther.
var classifyOrder = []struct {
	category string
	class    string
}{
	{"Frontend Development", ClassFrontend},
	{"Backend Development", ClassBackend},
	{"Mobile Development", ClassMobile},
	{"AI/ML", ClassAI},
	{"Design", ClassDesign},
}

var categoryIndex = func() map[string]map[string]struct{} {
	idx := make(map[string]map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set := make(map[string]struct{}, len(c.Skills))
		for _, s := range c.Skills {
			set[s] = struct{}{}
		}
		idx[c.Name] = set
	}
	return idx
}()

// Classify maps a skill label to its display class. The match is exact
// (the canonical lists, not substrings); unknown labels get ClassOther.
// Classify is total: it never fails, whatever the input.
func Classify(skill string) string {
	for _, e := range classifyOrder {
		if _, ok := categoryIndex[e.category][skill]; ok {
			return e.class
		}
	}
	return ClassOther
}

// BranchOptions is the fixed branch enum offered on registration forms.
var BranchOptions = []string{
	"Computer Science & Engineering",
	"Information Technology",
	"Electronics & Communication Engineering",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Chemical Engineering",
	"Biotechnology",
	"MCA",
	"BCA",
	"Other",
}

// YearOptions is the fixed study-year enum.
var YearOptions = []string{
	"1st Year",
	"2nd Year",
	"3rd Year",
	"4th Year",
	"Final Year",
	"Other",
}

// ValidBranch reports whether b is one of BranchOptions.
func ValidBranch(b string) bool { return contains(BranchOptions, b) }

// ValidYear reports whether y is one of YearOptions.
func ValidYear(y string) bool { return contains(YearOptions, y) }

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
