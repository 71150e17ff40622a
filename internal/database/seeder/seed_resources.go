package seeder

import (
	"context"
	"fmt"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
)

// ResourcesSeeder loads the built-in course catalog that learning-path
// generation draws from. The catalog is only inserted into an empty
// table so user-added resources survive restarts.
type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "learning_resources" }

type resourceRow struct {
	Skill      string
	Title      string
	URL        string
	Platform   string
	Weeks      int
	Difficulty string
	Desc       string
	Rating     float64
	Price      string
}

func (ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "learning_resources",
		"id", "skill_name", "resource_title", "resource_url", "platform",
		"duration_weeks", "difficulty_level", "description", "rating", "price"); err != nil {
		return err
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM learning_resources`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, r := range catalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO learning_resources
			 (skill_name, resource_title, resource_url, platform, duration_weeks,
			  difficulty_level, description, rating, price)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Skill, r.Title, r.URL, r.Platform, r.Weeks, r.Difficulty, r.Desc, r.Rating, r.Price,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var catalog = []resourceRow{
	{"Python", "Complete Python Bootcamp", "https://www.udemy.com/course/complete-python-bootcamp/",
		"Udemy", 4, "Beginner", "Learn Python from scratch", 4.6, "$19.99"},
	{"Python", "Python for Everybody", "https://www.coursera.org/specializations/python",
		"Coursera", 8, "Beginner", "University of Michigan Python course", 4.8, "Free"},
	{"Python", "Python Tutorial", "https://www.youtube.com/watch?v=_uQrJ0TkZlc",
		"YouTube", 1, "Beginner", "6-hour Python tutorial", 4.7, "Free"},

	{"Java", "Java Programming Masterclass", "https://www.udemy.com/course/java-the-complete-java-developer-course/",
		"Udemy", 6, "Beginner", "Complete Java development", 4.6, "$24.99"},
	{"Java", "Object Oriented Programming in Java", "https://www.coursera.org/learn/object-oriented-java",
		"Coursera", 6, "Intermediate", "Duke University Java course", 4.7, "Free"},

	{"JavaScript", "The Complete JavaScript Course", "https://www.udemy.com/course/the-complete-javascript-course/",
		"Udemy", 6, "All Levels", "Modern JavaScript from beginner to advanced", 4.7, "$19.99"},
	{"JavaScript", "JavaScript Tutorial", "https://www.youtube.com/watch?v=PkZNo7MFNFg",
		"YouTube", 1, "Beginner", "JavaScript full course", 4.8, "Free"},

	{"React", "React - The Complete Guide", "https://www.udemy.com/course/react-the-complete-guide/",
		"Udemy", 5, "Intermediate", "Master React including Hooks", 4.6, "$24.99"},
	{"React", "React Tutorial", "https://www.youtube.com/watch?v=Ke90Tje7VS0",
		"YouTube", 1, "Beginner", "React JS crash course", 4.7, "Free"},

	{"Docker", "Docker Mastery", "https://www.udemy.com/course/docker-mastery/",
		"Udemy", 4, "Intermediate", "Complete Docker course", 4.7, "$19.99"},
	{"Docker", "Docker Tutorial for Beginners", "https://www.youtube.com/watch?v=fqMOX6JJhGo",
		"YouTube", 1, "Beginner", "Docker crash course", 4.8, "Free"},

	{"Kubernetes", "Kubernetes for Absolute Beginners", "https://www.udemy.com/course/learn-kubernetes/",
		"Udemy", 3, "Beginner", "Learn Kubernetes basics", 4.5, "$19.99"},
	{"Kubernetes", "Kubernetes Tutorial", "https://www.youtube.com/watch?v=X48VuDVv0do",
		"YouTube", 1, "Beginner", "Kubernetes crash course", 4.7, "Free"},

	{"AWS", "AWS Certified Solutions Architect", "https://www.udemy.com/course/aws-certified-solutions-architect-associate/",
		"Udemy", 12, "Intermediate", "Complete AWS certification prep", 4.7, "$24.99"},
	{"AWS", "AWS Tutorial for Beginners", "https://www.youtube.com/watch?v=k1RI5locZE4",
		"YouTube", 1, "Beginner", "AWS full course", 4.6, "Free"},

	{"SQL", "The Complete SQL Bootcamp", "https://www.udemy.com/course/the-complete-sql-bootcamp/",
		"Udemy", 3, "Beginner", "Master SQL queries", 4.6, "$19.99"},
	{"SQL", "SQL Tutorial", "https://www.youtube.com/watch?v=HXV3zeQKqGY",
		"YouTube", 1, "Beginner", "SQL full course", 4.7, "Free"},

	{"MongoDB", "MongoDB - The Complete Developer's Guide", "https://www.udemy.com/course/mongodb-the-complete-developers-guide/",
		"Udemy", 4, "Intermediate", "Master MongoDB", 4.6, "$19.99"},
	{"MongoDB", "MongoDB Crash Course", "https://www.youtube.com/watch?v=-56x56UppqQ",
		"YouTube", 1, "Beginner", "MongoDB tutorial", 4.7, "Free"},

	{"Machine Learning", "Machine Learning A-Z", "https://www.udemy.com/course/machinelearning/",
		"Udemy", 8, "Intermediate", "Hands-on Python & R", 4.5, "$24.99"},
	{"Machine Learning", "Machine Learning by Stanford", "https://www.coursera.org/learn/machine-learning",
		"Coursera", 11, "Intermediate", "Andrew Ng's famous course", 4.9, "Free"},

	{"TensorFlow", "TensorFlow Developer Certificate", "https://www.udemy.com/course/tensorflow-developer-certificate/",
		"Udemy", 6, "Intermediate", "Official TensorFlow cert prep", 4.7, "$24.99"},
	{"TensorFlow", "TensorFlow Tutorial", "https://www.youtube.com/watch?v=tPYj3fFJGjk",
		"YouTube", 1, "Beginner", "TensorFlow crash course", 4.6, "Free"},

	{"Node.js", "The Complete Node.js Developer Course", "https://www.udemy.com/course/the-complete-nodejs-developer-course/",
		"Udemy", 5, "Intermediate", "Build real-world apps", 4.6, "$19.99"},
	{"Node.js", "Node.js Tutorial", "https://www.youtube.com/watch?v=TlB_eWDSMt4",
		"YouTube", 1, "Beginner", "Node.js full course", 4.7, "Free"},

	{"TypeScript", "Understanding TypeScript", "https://www.udemy.com/course/understanding-typescript/",
		"Udemy", 4, "Intermediate", "Master TypeScript", 4.7, "$19.99"},
	{"TypeScript", "TypeScript Tutorial", "https://www.youtube.com/watch?v=BwuLxPH8IDs",
		"YouTube", 1, "Beginner", "TypeScript crash course", 4.6, "Free"},

	{"Git", "Git Complete Guide", "https://www.udemy.com/course/git-complete/",
		"Udemy", 2, "Beginner", "Master Git and GitHub", 4.7, "$19.99"},
	{"Git", "Git Tutorial for Beginners", "https://www.youtube.com/watch?v=8JJ101D3knE",
		"YouTube", 1, "Beginner", "Git crash course", 4.8, "Free"},

	{"Redis", "Redis: The Complete Developer's Guide", "https://www.udemy.com/course/redis-the-complete-developers-guide/",
		"Udemy", 3, "Intermediate", "Master Redis", 4.6, "$19.99"},

	{"GraphQL", "GraphQL with React", "https://www.udemy.com/course/graphql-with-react-course/",
		"Udemy", 4, "Intermediate", "Build modern APIs", 4.5, "$19.99"},

	{"Django", "Django for Beginners", "https://www.udemy.com/course/django-for-beginners/",
		"Udemy", 5, "Beginner", "Python web framework", 4.6, "$19.99"},

	{"Flask", "REST APIs with Flask", "https://www.udemy.com/course/rest-api-flask-and-python/",
		"Udemy", 3, "Intermediate", "Build REST APIs", 4.6, "$19.99"},

	{"Spring Boot", "Spring Boot Master Class", "https://www.udemy.com/course/spring-boot-tutorial/",
		"Udemy", 6, "Intermediate", "Complete Spring Boot", 4.5, "$24.99"},
}
