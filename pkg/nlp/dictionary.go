package nlp

import "slices"

// Category — категория справочника терминов.
type Category string

const (
	CategoryLanguages  Category = "languages"
	CategoryFrameworks Category = "frameworks"
	CategoryDatabases  Category = "databases"
	CategoryTools      Category = "tools"
	CategoryPlatforms  Category = "platforms"
	CategoryDomains    Category = "domains"
	CategoryRoles      Category = "roles"
	CategorySkills     Category = "skills"
	CategoryTesting    Category = "testing"
)

// TechnologyCategories — категории, из которых ExtractTechnologies строит список кандидатов.
var TechnologyCategories = []Category{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryTools,
	CategoryPlatforms,
}

// Categories возвращает все категории справочника.
func Categories() []Category {
	return []Category{
		CategoryLanguages, CategoryFrameworks, CategoryDatabases, CategoryTools, CategoryPlatforms,
		CategoryDomains, CategoryRoles, CategorySkills, CategoryTesting,
	}
}

// Dictionary — справочник терминов по категориям.
// Значение, возвращённое DefaultDictionary или With, можно свободно менять:
// общие таблицы пакета при этом не затрагиваются.
type Dictionary map[Category][]string

// With возвращает копию справочника с заменённым списком терминов категории.
func (d Dictionary) With(c Category, terms []string) Dictionary {
	out := d.clone()
	out[c] = slices.Clone(terms)
	return out
}

// Terms возвращает термины перечисленных категорий в порядке категорий без повторов.
func (d Dictionary) Terms(categories ...Category) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range categories {
		for _, t := range d[c] {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func (d Dictionary) clone() Dictionary {
	out := make(Dictionary, len(d))
	for c, terms := range d {
		out[c] = slices.Clone(terms)
	}
	return out
}

// DefaultDictionary возвращает копию встроенного справочника.
func DefaultDictionary() Dictionary {
	return defaultDictionary.clone()
}

var defaultDictionary = Dictionary{
	CategoryLanguages: {
		"Java", "Kotlin", "Scala", "Groovy", "Python", "Go", "Golang", "C", "C++", "C#",
		"JavaScript", "TypeScript", "PHP", "Ruby", "Rust", "Swift", "Objective-C", "Dart",
		"Perl", "Bash", "PowerShell", "SQL", "PL/SQL", "T-SQL", "Apex", "1C", "ABAP",
		"Elixir", "Erlang", "Haskell", "Lua", "MATLAB", "VBA", "COBOL", "Solidity",
	},
	CategoryFrameworks: {
		"Spring", "Spring Boot", "Hibernate", "Micronaut", "Quarkus", "Django", "Flask",
		"FastAPI", "Celery", "React", "Redux", "Angular", "Vue", "Vue.js", "Next.js", "Nuxt",
		"Svelte", "Node.js", "Express", "NestJS", ".NET", "ASP.NET", "Entity Framework",
		"Laravel", "Symfony", "Ruby on Rails", "Flutter", "React Native", "SwiftUI",
		"Jetpack Compose", "Selenium", "Playwright", "Cypress", "Puppeteer", "Appium",
		"JUnit", "TestNG", "pytest", "Jest", "Mocha", "Cucumber", "Robot Framework",
		"Lightning Web Components", "LWC", "Aura", "Visualforce", "TensorFlow", "PyTorch",
		"Pandas", "NumPy", "Spark", "Kafka Streams", "gRPC", "GraphQL",
	},
	CategoryDatabases: {
		"PostgreSQL", "Postgres", "MySQL", "MariaDB", "Oracle", "MS SQL", "SQL Server",
		"SQLite", "MongoDB", "Redis", "Cassandra", "ClickHouse", "Elasticsearch",
		"OpenSearch", "DynamoDB", "Couchbase", "Neo4j", "Greenplum", "Snowflake",
		"BigQuery", "Tarantool", "HBase", "InfluxDB",
	},
	CategoryTools: {
		"Git", "GitLab", "GitHub", "Bitbucket", "Jira", "Confluence", "TestRail", "Zephyr",
		"Allure", "Postman", "SoapUI", "JMeter", "Gatling", "Locust", "k6", "Jenkins",
		"TeamCity", "GitLab CI", "GitHub Actions", "Maven", "Gradle", "npm", "Webpack",
		"Vite", "Docker", "Kubernetes", "k8s", "Helm", "Terraform", "Ansible", "Prometheus",
		"Grafana", "Kibana", "ELK", "Sentry", "Kafka", "RabbitMQ", "ActiveMQ", "Nginx",
		"Airflow", "dbt", "Figma", "Swagger", "OpenAPI", "SonarQube", "Charles", "Fiddler",
		"Wireshark", "Copado", "Gearset", "SFDX", "Data Loader",
	},
	CategoryPlatforms: {
		"AWS", "Azure", "GCP", "Google Cloud", "Yandex Cloud", "OpenShift", "Linux",
		"Windows", "macOS", "iOS", "Android", "Salesforce", "Sales Cloud", "Service Cloud",
		"Marketing Cloud", "Experience Cloud", "MuleSoft", "SAP", "ServiceNow", "Dynamics 365",
		"Bitrix24", "Hadoop", "Databricks", "Unity", "Unreal Engine", "Tableau", "Power BI",
	},
	CategoryDomains: {
		"FinTech", "Banking", "Insurance", "E-commerce", "Retail", "Healthcare", "MedTech",
		"Pharma", "EdTech", "Telecom", "Logistics", "Automotive", "Energy", "Oil and Gas",
		"Gaming", "GameDev", "Media", "AdTech", "Travel", "Real Estate", "Manufacturing",
		"Government", "Blockchain", "Crypto", "Cybersecurity", "HR Tech", "LegalTech",
		"Финтех", "Банки", "Страхование", "Ритейл", "Медицина", "Телеком", "Логистика",
		"Гейминг", "Образование", "Госсектор", "Промышленность",
	},
	CategoryRoles: {
		"QA Engineer", "QA Automation", "Automation QA", "Manual QA", "Test Engineer",
		"SDET", "Developer", "Software Engineer", "Backend Developer", "Frontend Developer",
		"Fullstack Developer", "Mobile Developer", "DevOps", "SRE", "Data Engineer",
		"Data Scientist", "ML Engineer", "Business Analyst", "System Analyst",
		"Project Manager", "Product Manager", "Scrum Master", "Team Lead", "Tech Lead",
		"Architect", "Solution Architect", "Salesforce Developer", "Salesforce Administrator",
		"Тестировщик", "Разработчик", "Аналитик", "Архитектор", "Тимлид", "Руководитель проекта",
	},
	CategorySkills: {
		"REST", "REST API", "SOAP", "Microservices", "OOP", "SOLID", "Design Patterns",
		"Agile", "Scrum", "Kanban", "CI/CD", "TDD", "BDD", "DDD", "Code Review", "UML",
		"BPMN", "ETL", "Machine Learning", "Data Analysis", "Integration", "Security",
		"Requirements Gathering", "Stakeholder Management", "Mentoring", "Code Quality",
	},
	CategoryTesting: {
		"Manual Testing", "Automation Testing", "Test Automation", "Regression Testing",
		"Smoke Testing", "Functional Testing", "Integration Testing", "API Testing",
		"UI Testing", "E2E", "End-to-End Testing", "Load Testing", "Performance Testing",
		"Security Testing", "Mobile Testing", "Exploratory Testing", "Unit Testing",
		"Test Design", "Test Cases", "Test Plan", "Bug Tracking", "Testing",
		"Тестирование", "Автотесты", "Регрессионное тестирование", "Нагрузочное тестирование",
	},
}
