package config

import "time"

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// PersonConfig describes an author or contributor
type PersonConfig struct {
	Name  string `yaml:"name" validate:"required"`
	URI   string `yaml:"uri" validate:"omitempty,url"`
	Email string `yaml:"email" validate:"omitempty,email"`
}

// LinkConfig describes one feed or entry link
type LinkConfig struct {
	Href string `yaml:"href" validate:"required"`
	Rel  string `yaml:"rel"`
	Type string `yaml:"type"`
}

// GeneratorConfig identifies the producing software
type GeneratorConfig struct {
	Name    string `yaml:"name" validate:"required"`
	URI     string `yaml:"uri" validate:"omitempty,url"`
	Version string `yaml:"version"`
}

// EntryConfig defines a statically configured entry. Text bodies carry an
// optional type (plain|html|xhtml); an omitted type means plain.
type EntryConfig struct {
	ID          string         `yaml:"id" validate:"required"`
	Title       string         `yaml:"title" validate:"required"`
	TitleType   string         `yaml:"titleType" validate:"omitempty,oneof=plain html xhtml"`
	Updated     time.Time      `yaml:"updated"`
	Published   time.Time      `yaml:"published"`
	Links       []LinkConfig   `yaml:"links" validate:"omitempty,dive"`
	Author      []PersonConfig `yaml:"author" validate:"omitempty,dive"`
	Contributor []PersonConfig `yaml:"contributor" validate:"omitempty,dive"`
	Rights      string         `yaml:"rights"`
	RightsType  string         `yaml:"rightsType" validate:"omitempty,oneof=plain html xhtml"`
	Content     string         `yaml:"content"`
	ContentType string         `yaml:"contentType" validate:"omitempty,oneof=plain html xhtml"`
	Summary     string         `yaml:"summary"`
	SummaryType string         `yaml:"summaryType" validate:"omitempty,oneof=plain html xhtml"`
}

// Feed represents a single configured feed
type Feed struct {
	Name      string           `yaml:"name" validate:"required"`
	ID        string           `yaml:"id" validate:"required"`
	Title     string           `yaml:"title" validate:"required"`
	TitleType string           `yaml:"titleType" validate:"omitempty,oneof=plain html xhtml"`
	Subtitle  string           `yaml:"subtitle"`
	Rights    string           `yaml:"rights"`
	Updated   time.Time        `yaml:"updated"`
	Author    []PersonConfig   `yaml:"author" validate:"omitempty,dive"`
	Generator *GeneratorConfig `yaml:"generator"`
	Links     []LinkConfig     `yaml:"links" validate:"omitempty,dive"`
	Entries   []EntryConfig    `yaml:"entries" validate:"omitempty,dive"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Feeds  []Feed       `yaml:"feeds"`
}
