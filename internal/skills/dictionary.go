package skills

import "github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

// dictionary is the canonical term list scanned against resume and job
// text. Entries are normalized (lowercase); multi-word terms are
// matched as phrases.
var dictionary = []string{
	// programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "go", "golang", "rust", "scala", "perl", "r", "matlab",
	"vba", "objective-c", "dart", "elixir", "haskell", "clojure",

	// web technologies
	"html", "css", "html5", "css3", "sass", "scss", "less", "xml", "json",
	"ajax", "rest", "restful", "graphql", "websocket", "soap",

	// frontend frameworks
	"react", "angular", "vue", "vue.js", "ember", "backbone", "jquery",
	"bootstrap", "tailwind", "material-ui", "next.js", "nuxt.js", "svelte",

	// backend frameworks
	"node.js", "express", "django", "flask", "fastapi", "spring", "spring boot",
	"laravel", "symfony", "rails", "ruby on rails", "asp.net", ".net", "dotnet",

	// databases
	"sql", "mysql", "postgresql", "postgres", "oracle", "mongodb", "redis",
	"cassandra", "dynamodb", "elasticsearch", "sqlite", "mariadb", "neo4j",
	"couchdb", "influxdb",

	// cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "gitlab", "github actions", "circleci", "travis ci", "terraform",
	"ansible", "puppet", "chef", "vagrant", "heroku", "digitalocean", "nginx",
	"apache",

	// data science and ML
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
	"scikit-learn", "pandas", "numpy", "scipy", "matplotlib", "seaborn",
	"jupyter", "anaconda", "spark", "hadoop", "hive", "pig", "data analysis",
	"data science", "nlp", "computer vision", "neural networks", "cnn", "rnn",
	"lstm", "bert", "transformers",

	// mobile
	"android", "ios", "react native", "flutter", "xamarin", "cordova",
	"ionic", "swift ui", "jetpack compose",

	// testing
	"unit testing", "integration testing", "pytest", "junit", "selenium",
	"cypress", "jest", "mocha", "chai", "testng", "cucumber",

	// version control
	"git", "github", "bitbucket", "svn", "mercurial",

	// methodologies
	"agile", "scrum", "kanban", "waterfall", "ci/cd", "tdd", "bdd", "devops",

	// tools
	"linux", "unix", "bash", "shell scripting", "powershell", "vim", "emacs",
	"vscode", "intellij", "eclipse", "pycharm", "postman", "swagger", "jira",
	"confluence", "slack", "trello", "notion",

	// streaming and pipelines
	"kafka", "rabbitmq", "airflow", "flink", "storm", "etl",

	// security
	"oauth", "jwt", "ssl", "tls", "encryption", "cybersecurity",
	"penetration testing",

	// soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"project management", "time management", "critical thinking",
}

// excludedWords are resume-common tokens that collide with dictionary
// scanning and never count as skills.
var excludedWords = map[string]struct{}{
	"experience": {}, "years": {}, "months": {}, "customer": {}, "date": {},
	"time": {}, "work": {}, "project": {}, "team": {}, "company": {},
	"position": {}, "role": {}, "skills": {}, "education": {},
	"university": {}, "college": {}, "school": {}, "degree": {},
	"bachelor": {}, "master": {}, "phd": {},
}

// categories maps normalized names to their display category; anything
// absent falls back to Technical.
var categories = map[string]string{
	"python":     skill.CategoryProgrammingLanguage,
	"java":       skill.CategoryProgrammingLanguage,
	"javascript": skill.CategoryProgrammingLanguage,
	"typescript": skill.CategoryProgrammingLanguage,
	"c++":        skill.CategoryProgrammingLanguage,
	"c#":         skill.CategoryProgrammingLanguage,
	"ruby":       skill.CategoryProgrammingLanguage,
	"php":        skill.CategoryProgrammingLanguage,
	"go":         skill.CategoryProgrammingLanguage,
	"golang":     skill.CategoryProgrammingLanguage,
	"rust":       skill.CategoryProgrammingLanguage,

	"react":   skill.CategoryFrontendFramework,
	"angular": skill.CategoryFrontendFramework,
	"vue":     skill.CategoryFrontendFramework,

	"django":      skill.CategoryBackendFramework,
	"flask":       skill.CategoryBackendFramework,
	"spring":      skill.CategoryBackendFramework,
	"spring boot": skill.CategoryBackendFramework,
	"express":     skill.CategoryBackendFramework,
	"node.js":     skill.CategoryBackendFramework,

	"sql":        skill.CategoryDatabase,
	"mysql":      skill.CategoryDatabase,
	"postgresql": skill.CategoryDatabase,
	"mongodb":    skill.CategoryDatabase,
	"redis":      skill.CategoryDatabase,
	"oracle":     skill.CategoryDatabase,

	"aws":          skill.CategoryCloudPlatform,
	"azure":        skill.CategoryCloudPlatform,
	"gcp":          skill.CategoryCloudPlatform,
	"google cloud": skill.CategoryCloudPlatform,

	"docker":     skill.CategoryDevOpsTool,
	"kubernetes": skill.CategoryDevOpsTool,
	"jenkins":    skill.CategoryDevOpsTool,
	"terraform":  skill.CategoryDevOpsTool,

	"machine learning": skill.CategoryMachineLearning,
	"tensorflow":       skill.CategoryMachineLearning,
	"pytorch":          skill.CategoryMachineLearning,
	"keras":            skill.CategoryMachineLearning,

	"leadership":      skill.CategorySoftSkill,
	"communication":   skill.CategorySoftSkill,
	"teamwork":        skill.CategorySoftSkill,
	"problem solving": skill.CategorySoftSkill,
}

var softSkills = map[string]struct{}{
	"leadership": {}, "communication": {}, "teamwork": {},
	"problem solving": {}, "analytical": {}, "project management": {},
	"time management": {}, "critical thinking": {},
}

// Dictionary returns a copy of the canonical term list.
func Dictionary() []string {
	out := make([]string, len(dictionary))
	copy(out, dictionary)
	return out
}

// CategoryOf returns the display category for a name in any casing.
func CategoryOf(name string) string {
	if c, ok := categories[skill.Normalize(name)]; ok {
		return c
	}
	return skill.CategoryTechnical
}

// IsSoftSkill reports whether the name is a non-technical skill.
func IsSoftSkill(name string) bool {
	_, ok := softSkills[skill.Normalize(name)]
	return ok
}
