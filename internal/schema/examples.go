package schema

// exampleSnippets maps a top-level section name to a correctly formatted YAML
// snippet shown alongside diagnostics for that section. Not every section has
// one; the reporter renders without a snippet when the lookup misses.
var exampleSnippets = map[string]string{
	"debug":     "debug: false",
	"objective": "objective: A Software Engineer with over 8 years of experience...",
	"basic": `basic:
  name: John Doe
  address: Los Angeles, CA
  email: johndoe@example.com
  phone: 555-123-4567
  websites:
      - https://linkedin.com/johndoe
      - https://github.com/johndoe`,
	"education": `education:
  - school: University of California, Berkeley
    degrees:
      - names:
          - B.S. Computer Science
  - school: Stanford University
    degrees:
      - names:
          - M.S. Computer Science`,
	"experiences": `experiences:
  - company: Tech Innovators Inc.
    location: San Francisco, CA
    titles:
      - name: Lead Software Engineer
        startdate: 2022
        enddate: 2024
    highlights:
      - Led the development of a cloud-based platform, increasing user engagement by 50%.
      - Implemented a microservices architecture, reducing system downtime by 30%.
      - Mentored a team of junior developers, fostering a culture of continuous learning and improvement.
      - Spearheaded the integration of AI-driven features, enhancing product capabilities and user satisfaction.`,
	"skills": `skills:
  - category: Technical
    skills:
      - JavaScript
      - Python
      - AWS
      - Docker
      - Kubernetes
      - React
      - Node.js
      - Microservices
      - CI/CD
      - SQL
      - NoSQL
      - REST APIs
  - category: Non-technical
    skills:
      - Strong problem-solving skills
      - Excellent communication
      - Team leadership
      - Project management
      - Agile methodologies`,
}

// ExampleFor returns the example snippet for a top-level section, if one is
// defined.
func ExampleFor(section string) (string, bool) {
	snippet, ok := exampleSnippets[section]
	return snippet, ok
}
