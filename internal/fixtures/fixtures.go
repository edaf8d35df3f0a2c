// Package fixtures provides the seed data pages are built from. The seed
// ships embedded as YAML; a file or a spreadsheet can replace it.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"flounder-swim/internal/models"
)

//go:embed seed.yaml
var embedded []byte

type Seed struct {
	Participants  []models.Participant     `yaml:"participants"`
	Teams         []models.Team            `yaml:"teams"`
	Protocols     []models.Protocol        `yaml:"protocols"`
	HeatNames     []models.HeatName        `yaml:"heat_names"`
	AgeCategories []models.AgeCategory     `yaml:"age_categories"`
	Awards        []models.DistanceResults `yaml:"awards"`
}

// Default returns the embedded seed.
func Default() (Seed, error) {
	s, err := Parse(embedded)
	if err != nil {
		return Seed{}, fmt.Errorf("embedded seed: %w", err)
	}
	return s, nil
}

func Parse(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// LoadFile reads a seed from path. An empty path means the embedded seed.
func LoadFile(path string) (Seed, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return s, nil
}

// Clone returns a deep copy, so a page can never change the seed.
func (s Seed) Clone() Seed {
	out := Seed{
		Participants:  append([]models.Participant(nil), s.Participants...),
		HeatNames:     append([]models.HeatName(nil), s.HeatNames...),
		AgeCategories: append([]models.AgeCategory(nil), s.AgeCategories...),
	}
	for _, t := range s.Teams {
		out.Teams = append(out.Teams, t.Clone())
	}
	for _, p := range s.Protocols {
		out.Protocols = append(out.Protocols, p.Clone())
	}
	for _, r := range s.Awards {
		r.Winners = append([]models.Winner(nil), r.Winners...)
		out.Awards = append(out.Awards, r)
	}
	return out
}

// Overlay returns s with every non-empty collection of other in place of
// its own.
func (s Seed) Overlay(other Seed) Seed {
	out := s.Clone()
	o := other.Clone()
	if len(o.Participants) > 0 {
		out.Participants = o.Participants
	}
	if len(o.Teams) > 0 {
		out.Teams = o.Teams
	}
	if len(o.Protocols) > 0 {
		out.Protocols = o.Protocols
	}
	if len(o.HeatNames) > 0 {
		out.HeatNames = o.HeatNames
	}
	if len(o.AgeCategories) > 0 {
		out.AgeCategories = o.AgeCategories
	}
	if len(o.Awards) > 0 {
		out.Awards = o.Awards
	}
	return out
}
