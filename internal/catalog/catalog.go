// Package catalog provides the read-only course, plan, and demo user data.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sinaw-id/sinaw/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var builtin []byte

type document struct {
	User       model.User     `yaml:"user"`
	Categories []string       `yaml:"categories"`
	Courses    []model.Course `yaml:"courses"`
	Plans      []model.Plan   `yaml:"plans"`
}

// Catalog is an immutable, validated dataset. Accessors return copies.
type Catalog struct {
	user       model.User
	categories []string
	courses    []model.Course
	byID       map[int]int
	plans      []model.Plan
}

// Load returns the catalog bundled with the binary.
func Load() (*Catalog, error) {
	return Parse(builtin)
}

// LoadFile reads a catalog override from path. An empty path means the
// bundled catalog.
func LoadFile(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	if strings.TrimSpace(doc.User.Name) == "" {
		return nil, errors.New("catalog: demo user name is empty")
	}

	byID := make(map[int]int, len(doc.Courses))
	for i, c := range doc.Courses {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate course id %d", c.ID)
		}
		byID[c.ID] = i
	}

	return &Catalog{
		user:       doc.User,
		categories: doc.Categories,
		courses:    doc.Courses,
		byID:       byID,
		plans:      doc.Plans,
	}, nil
}

// DemoUser returns the identity assigned on login.
func (c *Catalog) DemoUser() model.User {
	return c.user
}

// Categories returns the category chips in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Courses returns every course in catalog order.
func (c *Catalog) Courses() []model.Course {
	out := make([]model.Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = copyCourse(course)
	}
	return out
}

// Course looks up a course by id. A missing id is reported through ok.
func (c *Catalog) Course(id int) (model.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Course{}, false
	}
	return copyCourse(c.courses[i]), true
}

// ByCategory returns the courses of one category in catalog order.
func (c *Catalog) ByCategory(category string) []model.Course {
	var out []model.Course
	for _, course := range c.courses {
		if strings.EqualFold(course.Category, category) {
			out = append(out, copyCourse(course))
		}
	}
	return out
}

// Plans returns the subscription plans in display order.
func (c *Catalog) Plans() []model.Plan {
	out := make([]model.Plan, len(c.plans))
	for i, p := range c.plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func copyCourse(c model.Course) model.Course {
	c.Videos = append([]model.Video(nil), c.Videos...)
	return c
}
