// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "devblog/internal/models"

// DefaultCategories is the category set every new repository starts with.
// The post counts are display values and are not kept in sync with posts.
func DefaultCategories() []models.NewCategory {
	return []models.NewCategory{
		{
			Name:        "System Design",
			Slug:        "system-design",
			Description: "Architecture patterns, scalability, and distributed systems",
			Color:       "blue",
			PostCount:   "1",
		},
		{
			Name:        "Databases",
			Slug:        "databases",
			Description: "SQL, NoSQL, optimization, and data modeling",
			Color:       "green",
			PostCount:   "1",
		},
		{
			Name:        "Languages",
			Slug:        "languages",
			Description: "TypeScript, JavaScript, Python, and language comparisons",
			Color:       "purple",
			PostCount:   "1",
		},
		{
			Name:        "Frontend",
			Slug:        "frontend",
			Description: "React, Next.js, UI/UX, and frontend best practices",
			Color:       "yellow",
			PostCount:   "0",
		},
		{
			Name:        "Backend",
			Slug:        "backend",
			Description: "APIs, microservices, performance, and server-side development",
			Color:       "red",
			PostCount:   "0",
		},
		{
			Name:        "DevOps",
			Slug:        "devops",
			Description: "CI/CD, containerization, monitoring, and deployment strategies",
			Color:       "indigo",
			PostCount:   "0",
		},
	}
}
