// Package intake drives the three step lead form: name, mobile, site.
package intake

import (
	"errors"
	"regexp"
	"strings"
)

type Step int

const (
	StepName   Step = 1
	StepMobile Step = 2
	StepSite   Step = 3
)

var (
	ErrNameRequired  = errors.New("please enter your name")
	ErrInvalidMobile = errors.New("please enter a valid 10-digit mobile number")
	ErrNotReady      = errors.New("name and mobile must be entered first")
)

// Indian mobile numbers: ten digits, first one 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func ValidMobile(m string) bool {
	return mobilePattern.MatchString(m)
}

// Flow is one visitor's progress through the form.
type Flow struct {
	Step   Step
	Name   string
	Mobile string
}

func NewFlow() *Flow {
	return &Flow{Step: StepName}
}

// SubmitName advances to the mobile step when the trimmed name is non-empty.
func (f *Flow) SubmitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	f.Name = name
	f.Step = StepMobile
	return nil
}

func (f *Flow) SubmitMobile(mobile string) error {
	if f.Step < StepMobile {
		return ErrNotReady
	}
	if !ValidMobile(mobile) {
		return ErrInvalidMobile
	}
	f.Mobile = mobile
	f.Step = StepSite
	return nil
}

func (f *Flow) Back() {
	if f.Step > StepName {
		f.Step--
	}
}

func (f *Flow) Reset() {
	*f = Flow{Step: StepName}
}
