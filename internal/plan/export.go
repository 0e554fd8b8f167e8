package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report is a reviewable summary of an InjectionPlan.
type Report struct {
	Owners      []OwnerReport `yaml:"owners"`
	Diagnostics []string      `yaml:"diagnostics,omitempty"`
}

// OwnerReport describes one owning type.
type OwnerReport struct {
	Type    string        `yaml:"type"`
	Fields  []FieldReport `yaml:"fields"`
	Skipped []string      `yaml:"skipped,omitempty"`
}

// FieldReport describes one emitted field.
type FieldReport struct {
	Field    string   `yaml:"field"`
	Key      string   `yaml:"key"`
	Type     string   `yaml:"type"`
	Category Category `yaml:"category"`
	Accessor string   `yaml:"accessor"`
}

// GenerateReport creates a report from a resolved plan.
func GenerateReport(p *InjectionPlan) *Report {
	report := &Report{Owners: []OwnerReport{}}

	for _, o := range p.Owners {
		or := OwnerReport{Type: o.Owner.ID.String()}

		for _, f := range o.Fields {
			or.Fields = append(or.Fields, FieldReport{
				Field:    f.Descriptor.Name(),
				Key:      f.Descriptor.Key(),
				Type:     f.Descriptor.Type().String(),
				Category: f.Category,
				Accessor: f.Accessor,
			})
		}

		for _, fd := range o.Skipped {
			or.Skipped = append(or.Skipped, fd.Name())
		}

		report.Owners = append(report.Owners, or)
	}

	for _, d := range p.Diagnostics.All() {
		report.Diagnostics = append(report.Diagnostics, d.Severity.String()+": "+d.Error())
	}

	return report
}

// ExportYAML renders the plan report as YAML.
func ExportYAML(p *InjectionPlan) ([]byte, error) {
	return yaml.Marshal(GenerateReport(p))
}

// WriteReport writes the YAML report to path.
func WriteReport(p *InjectionPlan, path string) error {
	data, err := ExportYAML(p)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
