package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sinaw-id/sinaw/internal/model"
)

func TestLoad_Builtin(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	u := c.DemoUser()
	if u.Name != "Budi Darmawan" || u.Tier != model.TierPro {
		t.Fatalf("demo user = %+v, want Budi Darmawan/Pro", u)
	}
	if got := len(c.Courses()); got != 6 {
		t.Fatalf("courses = %d, want 6", got)
	}
	if got := c.Categories(); strings.Join(got, ",") != "SEO,Ads,Copywriting,Branding" {
		t.Fatalf("categories = %v", got)
	}

	plans := c.Plans()
	if len(plans) != 3 {
		t.Fatalf("plans = %d, want 3", len(plans))
	}
	if !plans[2].Highlight || plans[2].Name != "Pro" {
		t.Fatalf("highlighted plan = %+v, want Pro", plans[2])
	}
}

func TestCourse_Lookup(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	course, ok := c.Course(3)
	if !ok {
		t.Fatal("Course(3) not found")
	}
	if course.Title != "Copywriting Persuasif" || len(course.Videos) != 2 {
		t.Fatalf("Course(3) = %+v", course)
	}
	if course.Videos[0].Title != "Materi 1: Formula AIDA" {
		t.Fatalf("first video = %q, want ordered list", course.Videos[0].Title)
	}

	if _, ok := c.Course(42); ok {
		t.Fatal("Course(42) found, want missing")
	}
}

func TestCourse_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	course, _ := c.Course(1)
	course.Videos[0].Title = "changed"
	again, _ := c.Course(1)
	if again.Videos[0].Title == "changed" {
		t.Fatal("catalog mutated through returned course")
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ads := c.ByCategory("ads")
	if len(ads) != 2 || ads[0].ID != 1 || ads[1].ID != 5 {
		t.Fatalf("ByCategory(ads) = %+v, want courses 1 and 5", ads)
	}
	if got := c.ByCategory("Video"); len(got) != 0 {
		t.Fatalf("ByCategory(Video) = %d courses, want 0", len(got))
	}
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "bad yaml", doc: "user: [", want: "decode"},
		{name: "no user", doc: "courses: []", want: "demo user"},
		{
			name: "duplicate id",
			doc:  "user: {name: A}\ncourses:\n  - {id: 1, title: x}\n  - {id: 1, title: y}\n",
			want: "duplicate course id 1",
		},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.doc))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yml")
	doc := "user: {name: Sari, subscription_status: Basic}\ncourses:\n  - {id: 7, title: Email Marketing, category: Ads}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.DemoUser().Tier != model.TierBasic {
		t.Fatalf("tier = %q, want Basic", c.DemoUser().Tier)
	}
	if _, ok := c.Course(7); !ok {
		t.Fatal("Course(7) missing from override")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("LoadFile(missing): want error")
	}

	builtin, err := LoadFile("")
	if err != nil || len(builtin.Courses()) != 6 {
		t.Fatalf("LoadFile(\"\") = %v, %v; want builtin catalog", builtin, err)
	}
}
