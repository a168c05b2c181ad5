// Package settings persists presentation defaults in a JSON file. Loading
// merges the file over built-in defaults, so a partial file (or none at
// all) still yields a complete Settings value.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/quizforge/quizforge/internal/format"
)

type Settings struct {
	CompanyName       string `json:"company_name" mapstructure:"company_name"`
	Author            string `json:"author" mapstructure:"author"`
	ShowResults       bool   `json:"show_results" mapstructure:"show_results"`
	ShowExplanations  bool   `json:"show_explanations" mapstructure:"show_explanations"`
	AllowReview       bool   `json:"allow_review" mapstructure:"allow_review"`
	Randomize         bool   `json:"randomize" mapstructure:"randomize"`
	TimerMinutes      int    `json:"timer_minutes" mapstructure:"timer_minutes" validate:"gte=0"`
	PassThreshold     int    `json:"pass_threshold" mapstructure:"pass_threshold" validate:"gte=0,lte=100"`
	EnableCertificate bool   `json:"enable_certificate" mapstructure:"enable_certificate"`
	Copyright         string `json:"copyright" mapstructure:"copyright"`
}

var validate = validator.New()

// Default mirrors DefaultPresentation: results, explanations and review on,
// no shuffle, no timer, 70% threshold, certificates off, no branding.
func Default() Settings {
	return Settings{
		ShowResults:      true,
		ShowExplanations: true,
		AllowReview:      true,
		PassThreshold:    70,
	}
}

func (s Settings) Validate() error {
	return validate.Struct(s)
}

// Presentation converts stored settings to the per-export form.
func (s Settings) Presentation() format.Presentation {
	return format.Presentation{
		Author:            s.Author,
		Company:           s.CompanyName,
		Copyright:         s.Copyright,
		ShowResults:       s.ShowResults,
		ShowExplanations:  s.ShowExplanations,
		AllowReview:       s.AllowReview,
		Randomize:         s.Randomize,
		TimerMinutes:      s.TimerMinutes,
		PassThreshold:     s.PassThreshold,
		EnableCertificate: s.EnableCertificate,
	}
}

// Load reads the settings file at path. A missing file is not an error;
// defaults come back and the first Save creates it. A present but
// malformed or invalid file is an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	d := Default()
	v.SetDefault("company_name", d.CompanyName)
	v.SetDefault("author", d.Author)
	v.SetDefault("show_results", d.ShowResults)
	v.SetDefault("show_explanations", d.ShowExplanations)
	v.SetDefault("allow_review", d.AllowReview)
	v.SetDefault("randomize", d.Randomize)
	v.SetDefault("timer_minutes", d.TimerMinutes)
	v.SetDefault("pass_threshold", d.PassThreshold)
	v.SetDefault("enable_certificate", d.EnableCertificate)
	v.SetDefault("copyright", d.Copyright)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Save validates and writes the settings file, creating parent directories
// as needed.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
