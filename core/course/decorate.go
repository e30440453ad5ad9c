package course

import (
	"strings"
	"time"
)

// Feature composition: a course view can be wrapped by up to three
// orthogonal capability layers. Layers only override the textual
// presentation and expose extra queries; the underlying Course's stored
// fields are never touched. Whatever order options are requested in,
// layers always apply in the fixed priority order below.

type (
	// Options selects the capability layers to apply; a zero field leaves
	// its layer off.
	Options struct {
		AccessEndDate       *time.Time `json:"accessEndDate,omitempty"`
		ExtraMaterials      []string   `json:"extraMaterials,omitempty"`
		CertificateTemplate string     `json:"certificateTemplate,omitempty"`
	}

	// View is the immutable composed presentation of a course.
	View struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Modules     []Module `json:"modules"`

		accessEndDate       *time.Time
		extraMaterials      []string
		certificateTemplate string
	}

	featureLayer struct {
		priority  int
		requested func(Options) bool
		apply     func(View, Options) View
	}
)

// fixed priority order: TimeLimited(1) applies closest to the base,
// then Premium(2), then Certificate(3).
var featureLayers = []featureLayer{
	{
		priority:  1,
		requested: func(o Options) bool { return o.AccessEndDate != nil },
		apply:     applyTimeLimited,
	},
	{
		priority:  2,
		requested: func(o Options) bool { return len(o.ExtraMaterials) > 0 },
		apply:     applyPremium,
	},
	{
		priority:  3,
		requested: func(o Options) bool { return o.CertificateTemplate != "" },
		apply:     applyCertificate,
	},
}

// Compose wraps c's base view with the layers requested in opts. It is
// pure: the same course and option set always yield an equivalent View.
func Compose(c Course, opts Options) View {
	v := View{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Modules:     c.Modules,
	}
	for _, layer := range featureLayers {
		if layer.requested(opts) {
			v = layer.apply(v, opts)
		}
	}
	return v
}

func applyTimeLimited(v View, opts Options) View {
	end := *opts.AccessEndDate
	v.accessEndDate = &end
	v.Description += "\n\nAccess until: " + end.Format("Jan 2, 2006")
	return v
}

func applyPremium(v View, opts Options) View {
	v.extraMaterials = append([]string(nil), opts.ExtraMaterials...)
	v.Title += " (Premium)"
	v.Description += "\n\nThis premium course includes exclusive materials."
	return v
}

func applyCertificate(v View, opts Options) View {
	v.certificateTemplate = opts.CertificateTemplate
	v.Title += " (Certificate Available)"
	return v
}

// IsAccessible reports whether the course can still be accessed. Courses
// without a time limit are always accessible.
func (v View) IsAccessible() bool {
	if v.accessEndDate == nil {
		return true
	}
	return nowFunc().Before(*v.accessEndDate)
}

// AccessEndDate returns the end of the access window, if any.
func (v View) AccessEndDate() (time.Time, bool) {
	if v.accessEndDate == nil {
		return time.Time{}, false
	}
	return *v.accessEndDate, true
}

// ExtraMaterials returns the premium materials, if any.
func (v View) ExtraMaterials() []string { return v.extraMaterials }

// HasCertificate reports whether a certificate can be generated.
func (v View) HasCertificate() bool { return v.certificateTemplate != "" }

// GenerateCertificate renders the certificate template for the given
// student name; it returns "" when no certificate layer is applied.
func (v View) GenerateCertificate(studentName string) string {
	if v.certificateTemplate == "" {
		return ""
	}
	return strings.ReplaceAll(v.certificateTemplate, "{studentName}", studentName)
}
