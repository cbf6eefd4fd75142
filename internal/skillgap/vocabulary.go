package skillgap

// vocabulary is the fixed set of known technical and professional skill
// phrases used by the fallback extraction path. Order is fixed so that
// extraction results are deterministic.
var vocabulary = []string{
	// Programming languages
	"python", "java", "c++", "c#", "javascript", "typescript", "scala", "r", "go", "swift", "kotlin",
	"php", "ruby", "perl", "bash", "shell", "matlab", "vb.net",

	// Data science and AI
	"machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch", "keras",
	"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "nltk", "spacy", "hugging face",
	"data analysis", "data visualization", "big data", "hadoop", "spark", "tableau", "power bi",

	// Web development
	"html", "css", "react", "angular", "vue", "node.js", "django", "flask", "fastapi", "spring boot",
	"asp.net", "laravel", "bootstrap", "tailwind", "jquery", "html5", "css3",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "oracle", "sql server", "redis", "cassandra", "dynamodb",

	// Cloud and DevOps
	"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
	"ci/cd", "terraform", "ansible", "linux", "unix",

	// Soft skills and business
	"communication", "leadership", "project management", "agile", "scrum", "teamwork", "problem solving",
	"critical thinking", "time management", "sales", "marketing", "strategic planning",
}
