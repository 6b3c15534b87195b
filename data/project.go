package data

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/samply/axisctl/field"
)

// Axis kinds of an AxisSpec.
const (
	KindBasic  = "basic"
	KindBox    = "box"
	KindNetted = "netted"
)

var Kinds = []string{KindBasic, KindBox, KindNetted}

type AxisSpec struct {
	Kind   string `yaml:"kind"`
	Base   string `yaml:"base"`
	Boxes  []int  `yaml:"boxes"`
	Nps    bool   `yaml:"nps"`
	Groups string `yaml:"groups"`
}

type FieldSpec struct {
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories"`
	Axis       AxisSpec `yaml:"axis"`
}

// Field returns a Field with the categories in declared order.
func (fs FieldSpec) Field() (*field.Field, error) {
	return field.New(fs.Name, fs.Categories)
}

type Project struct {
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

// FindField returns the field with the given name, ignoring case.
func (p *Project) FindField(name string) (*FieldSpec, bool) {
	for i := range p.Fields {
		if strings.EqualFold(p.Fields[i].Name, name) {
			return &p.Fields[i], true
		}
	}
	return nil, false
}

func ReadProjectFile(filename string) (*Project, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	project := Project{}

	err = yaml.Unmarshal(file, &project)
	if err != nil {
		return nil, fmt.Errorf("error while parsing project file: %s: %w", filename, err)
	}
	return &project, nil
}
