package matching

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jobfit/backend/models"
)

// LearningResource is the learning guidance for one skill
type LearningResource struct {
	LearningPath          string   `yaml:"learning_path"`
	EstimatedLearningTime string   `yaml:"estimated_time"`
	Resources             []string `yaml:"resources"`
}

// Catalog maps lowercase skill names to learning guidance
type Catalog map[string]LearningResource

var genericResources = []string{
	"Official documentation",
	"Online courses (Coursera, Udemy)",
	"Practice projects",
	"Community forums",
}

// DefaultCatalog returns the built-in learning catalog
func DefaultCatalog() Catalog {
	return Catalog{
		"javascript": {
			LearningPath:          "Master ES6+ features, async programming and DOM manipulation",
			EstimatedLearningTime: "4-8 weeks",
			Resources:             []string{"MDN Web Docs", "JavaScript.info", "freeCodeCamp", "Eloquent JavaScript"},
		},
		"typescript": {
			LearningPath:          "Learn the type system, generics and strict compiler settings on top of JavaScript",
			EstimatedLearningTime: "2-4 weeks",
			Resources:             []string{"TypeScript Handbook", "Total TypeScript", "Type Challenges"},
		},
		"react": {
			LearningPath:          "Learn components, hooks, state management and the React ecosystem",
			EstimatedLearningTime: "4-6 weeks",
			Resources:             []string{"React official docs", "Scrimba React course", "Epic React", "React Patterns"},
		},
		"node.js": {
			LearningPath:          "Build REST APIs with Express, learn the event loop, streams and npm packaging",
			EstimatedLearningTime: "4-6 weeks",
			Resources:             []string{"Node.js official docs", "The Odin Project", "Node.js Design Patterns"},
		},
		"python": {
			LearningPath:          "Cover syntax, the standard library, virtual environments and testing with pytest",
			EstimatedLearningTime: "4-8 weeks",
			Resources:             []string{"Python official tutorial", "Automate the Boring Stuff", "Real Python"},
		},
		"sql": {
			LearningPath:          "Practice joins, aggregation, indexing and query plans on a real database",
			EstimatedLearningTime: "2-4 weeks",
			Resources:             []string{"SQLBolt", "Mode SQL Tutorial", "PostgreSQL docs", "LeetCode database problems"},
		},
		"aws": {
			LearningPath:          "Start with IAM, EC2, S3 and Lambda, then prepare for the Cloud Practitioner exam",
			EstimatedLearningTime: "6-10 weeks",
			Resources:             []string{"AWS Skill Builder", "AWS Free Tier labs", "A Cloud Guru"},
		},
		"docker": {
			LearningPath:          "Learn images, containers, Dockerfiles, volumes and Compose",
			EstimatedLearningTime: "1-2 weeks",
			Resources:             []string{"Docker official docs", "Play with Docker", "Docker Deep Dive"},
		},
		"kubernetes": {
			LearningPath:          "Learn pods, deployments, services and Helm on a local cluster",
			EstimatedLearningTime: "4-8 weeks",
			Resources:             []string{"Kubernetes docs", "Kubernetes the Hard Way", "CKAD practice exercises"},
		},
		"go": {
			LearningPath:          "Learn the type system, interfaces, goroutines and channels, then build a small service",
			EstimatedLearningTime: "3-6 weeks",
			Resources:             []string{"A Tour of Go", "Effective Go", "Go by Example", "Learn Go with Tests"},
		},
		"java": {
			LearningPath:          "Cover OOP fundamentals, collections, streams and Spring Boot",
			EstimatedLearningTime: "6-10 weeks",
			Resources:             []string{"Oracle Java Tutorials", "Baeldung", "Spring Guides"},
		},
		"git": {
			LearningPath:          "Practice branching, rebasing, resolving conflicts and pull request workflows",
			EstimatedLearningTime: "1-2 weeks",
			Resources:             []string{"Pro Git book", "Learn Git Branching", "GitHub Skills"},
		},
		"graphql": {
			LearningPath:          "Learn schemas, resolvers and client caching with Apollo",
			EstimatedLearningTime: "2-3 weeks",
			Resources:             []string{"GraphQL official docs", "How to GraphQL", "Apollo Odyssey"},
		},
		"ci/cd": {
			LearningPath:          "Set up automated build, test and deploy pipelines with GitHub Actions",
			EstimatedLearningTime: "1-3 weeks",
			Resources:             []string{"GitHub Actions docs", "GitLab CI docs", "Continuous Delivery (Humble & Farley)"},
		},
	}
}

// LoadCatalog reads extra catalog entries from a YAML file keyed by skill
// name and merges them over DefaultCatalog. An empty path returns the
// default catalog.
func LoadCatalog(path string) (Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var extra map[string]LearningResource
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return catalog, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	for skill, res := range extra {
		key := skillKey(skill)
		if key == "" {
			continue
		}
		catalog[key] = res
	}
	return catalog, nil
}

// Lookup returns the catalog entry for skill, falling back to generic
// guidance for unknown skills.
func (c Catalog) Lookup(skill string) LearningResource {
	if res, ok := c[skillKey(skill)]; ok {
		return res
	}
	return LearningResource{
		LearningPath:          fmt.Sprintf("Develop expertise in %s", strings.TrimSpace(skill)),
		EstimatedLearningTime: "2-6 weeks",
		Resources:             genericResources,
	}
}

// Recommender turns skill gaps into learning recommendations
type Recommender struct {
	catalog Catalog
}

// NewRecommender creates a recommender backed by catalog. A nil catalog
// uses DefaultCatalog.
func NewRecommender(catalog Catalog) *Recommender {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Recommender{catalog: catalog}
}

// Recommend maps each gap entry to a recommendation, in input order
func (r *Recommender) Recommend(entries []models.SkillGapEntry) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(entries))
	for _, e := range entries {
		res := r.catalog.Lookup(e.Skill)

		priority := models.PriorityMedium
		impact := fmt.Sprintf("Preferred by %d of the top matching jobs", e.OpportunityCount)
		if e.Importance == models.ImportanceRequired {
			priority = models.PriorityHigh
			impact = fmt.Sprintf("Required by %d of the top matching jobs", e.OpportunityCount)
		}

		resources := make([]string, len(res.Resources))
		copy(resources, res.Resources)

		recs = append(recs, models.Recommendation{
			Skill:                 e.Skill,
			Priority:              priority,
			Impact:                impact,
			LearningPath:          res.LearningPath,
			EstimatedLearningTime: res.EstimatedLearningTime,
			Resources:             resources,
		})
	}
	return recs
}
