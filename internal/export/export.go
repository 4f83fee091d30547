// Package export produces the teacher dashboard artifacts: the class
// roster as CSV and the printable per-learner certificate.
package export

import (
	"embed"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"ecoquest/internal/avatar"
	"ecoquest/internal/content"
	"ecoquest/internal/engine"
	"ecoquest/internal/models"
)

//go:embed certificate.html.tmpl
var tmplFS embed.FS

var certTmpl = template.Must(template.ParseFS(tmplFS, "certificate.html.tmpl"))

// WriteRoster writes one CSV row per learner: class, name, stars, badge,
// then a Yes/No completion column per zone.
func WriteRoster(w io.Writer, className string, zones []content.Zone, learners []models.Learner) error {
	cw := csv.NewWriter(w)

	header := []string{"Class", "Name", "Stars", "Badge"}
	for _, z := range zones {
		header = append(header, z.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, l := range learners {
		row := []string{className, l.Name, strconv.Itoa(l.Stars), engine.CurrentBadge(l.Stars)}
		for _, z := range zones {
			if l.ZoneProgress[z.ID] {
				row = append(row, "Yes")
			} else {
				row = append(row, "No")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", l.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// RosterFilename returns the suggested CSV filename for a class.
func RosterFilename(className string) string {
	if className == "" {
		className = "class"
	}
	return fmt.Sprintf("ecoquest_class_%s.csv", strings.Join(strings.Fields(className), "_"))
}

type certView struct {
	Class     string
	Name      string
	Stars     int
	Badge     string
	AvatarSVG template.HTML
	Date      string
}

// WriteCertificate writes a self-contained printable HTML certificate for
// the learner, hero portrait included.
func WriteCertificate(w io.Writer, className string, l models.Learner) error {
	if className == "" {
		className = "Eco Quest Class"
	}
	return certTmpl.Execute(w, certView{
		Class:     className,
		Name:      l.Name,
		Stars:     l.Stars,
		Badge:     engine.CurrentBadge(l.Stars),
		AvatarSVG: template.HTML(avatar.Render(l.Avatar, l.Stars, 140)),
		Date:      time.Now().Format("January 2, 2006"),
	})
}

// CertificateFilename returns the suggested filename for a learner's
// certificate.
func CertificateFilename(l models.Learner) string {
	name := strings.Join(strings.Fields(l.Name), "_")
	if name == "" {
		name = l.ID
	}
	return fmt.Sprintf("ecoquest_certificate_%s.html", name)
}
