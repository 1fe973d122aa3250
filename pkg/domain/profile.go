package domain

import (
	"errors"
	"fmt"
	"time"
)

// Gender captures the profile gender marker.
type Gender string

// Supported gender markers.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ErrInvalidGender is returned by ParseGender for unknown markers.
var ErrInvalidGender = errors.New("invalid gender")

// ParseGender converts raw input to a Gender.
func ParseGender(raw string) (Gender, error) {
	switch g := Gender(raw); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, raw)
	}
}

// Person holds identity attributes.
type Person struct {
	Name      string    `json:"name" yaml:"name"`
	Gender    Gender    `json:"gender" yaml:"gender"`
	Birthdate time.Time `json:"birthdate" yaml:"birthdate"`
}

// Account holds access attributes.
type Account struct {
	Email      string    `json:"email" yaml:"email"`
	Role       string    `json:"role" yaml:"role"`
	LastAccess time.Time `json:"last_access" yaml:"-"`
}

// CheckCredentials reports whether the account can authenticate.
func (a Account) CheckCredentials() bool {
	return a.Email != ""
}

// Workspace holds editor preferences.
type Workspace struct {
	LastOpenFolder   string `json:"last_open_folder" yaml:"last_open_folder"`
	WorkingDirectory string `json:"working_directory" yaml:"working_directory"`
}

// UserSettings composes a person, an account and a workspace.
type UserSettings struct {
	Person    Person    `json:"person" yaml:"person"`
	Account   Account   `json:"account" yaml:"account"`
	Workspace Workspace `json:"workspace" yaml:"workspace"`
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// NewUserSettings assembles a profile and stamps the account's last access.
// A nil clock uses time.Now in UTC.
func NewUserSettings(person Person, account Account, workspace Workspace, clock Clock) UserSettings {
	if clock == nil {
		clock = ClockFunc(func() time.Time { return time.Now().UTC() })
	}
	account.LastAccess = clock.Now()
	return UserSettings{Person: person, Account: account, Workspace: workspace}
}

// EntityType implements Record.
func (UserSettings) EntityType() EntityType { return EntityUserSettings }

// Fields implements Record.
func (u UserSettings) Fields() []Field {
	return []Field{
		TextField("name", u.Person.Name),
		TextField("gender", string(u.Person.Gender)),
		TextField("email", u.Account.Email),
		TextField("role", u.Account.Role),
		TextField("last_open_folder", u.Workspace.LastOpenFolder),
		TextField("working_directory", u.Workspace.WorkingDirectory),
	}
}
