// Package input decodes records from YAML or JSON documents.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"cleancore/pkg/domain"
)

type productDoc struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Size  string  `yaml:"size"`
}

type profileDoc struct {
	Name             string `yaml:"name"`
	Gender           string `yaml:"gender"`
	Birthdate        string `yaml:"birthdate"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role"`
	LastOpenFolder   string `yaml:"last_open_folder"`
	WorkingDirectory string `yaml:"working_directory"`
}

// DecodeProduct reads a single product document. JSON input is accepted as YAML.
func DecodeProduct(r io.Reader) (domain.Product, error) {
	var doc productDoc
	if err := decodeStrict(r, &doc); err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	size, err := domain.ParseSize(doc.Size)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{Name: doc.Name, Price: doc.Price, Size: size}, nil
}

// DecodeUserSettings reads a flat profile document. Birthdate uses YYYY-MM-DD.
func DecodeUserSettings(r io.Reader, clock domain.Clock) (domain.UserSettings, error) {
	var doc profileDoc
	if err := decodeStrict(r, &doc); err != nil {
		return domain.UserSettings{}, fmt.Errorf("decode profile: %w", err)
	}
	person := domain.Person{Name: doc.Name}
	if doc.Gender != "" {
		gender, err := domain.ParseGender(doc.Gender)
		if err != nil {
			return domain.UserSettings{}, err
		}
		person.Gender = gender
	}
	if doc.Birthdate != "" {
		birth, err := time.Parse(time.DateOnly, doc.Birthdate)
		if err != nil {
			return domain.UserSettings{}, fmt.Errorf("parse birthdate: %w", err)
		}
		person.Birthdate = birth
	}
	return domain.NewUserSettings(
		person,
		domain.Account{Email: doc.Email, Role: doc.Role},
		domain.Workspace{LastOpenFolder: doc.LastOpenFolder, WorkingDirectory: doc.WorkingDirectory},
		clock,
	), nil
}

// ProductFile reads a product from path; "-" reads stdin.
func ProductFile(path string) (domain.Product, error) {
	data, err := readPath(path)
	if err != nil {
		return domain.Product{}, err
	}
	return DecodeProduct(bytes.NewReader(data))
}

// UserSettingsFile reads a profile from path; "-" reads stdin.
func UserSettingsFile(path string, clock domain.Clock) (domain.UserSettings, error) {
	data, err := readPath(path)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return DecodeUserSettings(bytes.NewReader(data), clock)
}

func readPath(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("input path required")
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document")
		}
		return err
	}
	return nil
}
