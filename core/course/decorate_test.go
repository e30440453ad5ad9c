package course

import (
	"testing"
	"time"
)

func baseCourse() Course {
	return Course{
		ID:          "c1",
		Title:       "Go 101",
		Description: "An introduction to the Go programming language.",
		TeacherID:   "t1",
		Status:      StatusActive,
	}
}

func TestCompose(t *testing.T) {
	end := time.Date(2021, time.June, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		opts      Options
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "no options",
			opts:      Options{},
			wantTitle: "Go 101",
			wantDesc:  "An introduction to the Go programming language.",
		},
		{
			name:      "time limited only",
			opts:      Options{AccessEndDate: &end},
			wantTitle: "Go 101",
			wantDesc:  "An introduction to the Go programming language.\n\nAccess until: Jun 30, 2021",
		},
		{
			name:      "premium only",
			opts:      Options{ExtraMaterials: []string{"Slides"}},
			wantTitle: "Go 101 (Premium)",
			wantDesc:  "An introduction to the Go programming language.\n\nThis premium course includes exclusive materials.",
		},
		{
			name:      "certificate only",
			opts:      Options{CertificateTemplate: "Awarded to {studentName}"},
			wantTitle: "Go 101 (Certificate Available)",
			wantDesc:  "An introduction to the Go programming language.",
		},
		{
			name: "all layers",
			opts: Options{
				AccessEndDate:       &end,
				ExtraMaterials:      []string{"Slides", "Source code"},
				CertificateTemplate: "Awarded to {studentName}",
			},
			wantTitle: "Go 101 (Premium) (Certificate Available)",
			wantDesc: "An introduction to the Go programming language." +
				"\n\nAccess until: Jun 30, 2021" +
				"\n\nThis premium course includes exclusive materials.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compose(baseCourse(), tt.opts)
			if v.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", v.Title, tt.wantTitle)
			}
			if v.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", v.Description, tt.wantDesc)
			}
		})
	}
}

func TestCompose_pure(t *testing.T) {
	end := time.Date(2021, time.June, 30, 0, 0, 0, 0, time.UTC)
	crs := baseCourse()
	opts := Options{
		AccessEndDate:       &end,
		ExtraMaterials:      []string{"Slides"},
		CertificateTemplate: "Awarded to {studentName}",
	}

	v1 := Compose(crs, opts)
	v2 := Compose(crs, opts)

	if v1.Title != v2.Title || v1.Description != v2.Description {
		t.Error("repeated composition produced different views")
	}
	// the stored course is untouched
	if crs.Title != "Go 101" {
		t.Errorf("course title mutated: %q", crs.Title)
	}
	if crs.Description != "An introduction to the Go programming language." {
		t.Errorf("course description mutated: %q", crs.Description)
	}
}

func TestView_IsAccessible(t *testing.T) {
	now := time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{"no time limit", Options{}, true},
		{"before end date", Options{AccessEndDate: &future}, true},
		{"past end date", Options{AccessEndDate: &past}, false},
		{"exactly at end date", Options{AccessEndDate: &now}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compose(baseCourse(), tt.opts)
			if got := v.IsAccessible(); got != tt.want {
				t.Errorf("IsAccessible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestView_queries(t *testing.T) {
	end := time.Date(2021, time.June, 30, 0, 0, 0, 0, time.UTC)

	plain := Compose(baseCourse(), Options{})
	if _, ok := plain.AccessEndDate(); ok {
		t.Error("AccessEndDate() on plain view reported a limit")
	}
	if plain.HasCertificate() {
		t.Error("HasCertificate() = true on plain view")
	}
	if got := plain.GenerateCertificate("Jane"); got != "" {
		t.Errorf("GenerateCertificate() = %q, want empty", got)
	}

	full := Compose(baseCourse(), Options{
		AccessEndDate:       &end,
		ExtraMaterials:      []string{"Slides", "Source code"},
		CertificateTemplate: "Certificate of Completion\nAwarded to {studentName}",
	})
	if got, ok := full.AccessEndDate(); !ok || !got.Equal(end) {
		t.Errorf("AccessEndDate() = (%v, %v), want (%v, true)", got, ok, end)
	}
	if got := full.ExtraMaterials(); len(got) != 2 || got[0] != "Slides" {
		t.Errorf("ExtraMaterials() = %v", got)
	}
	if !full.HasCertificate() {
		t.Error("HasCertificate() = false")
	}
	want := "Certificate of Completion\nAwarded to Jane"
	if got := full.GenerateCertificate("Jane"); got != want {
		t.Errorf("GenerateCertificate() = %q, want %q", got, want)
	}
}
