package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// deadlineValues backs the new-deadline form.
type deadlineValues struct {
	subject string
	kind    string
	due     string
}

func newDeadlineForm(vals *deadlineValues) *huh.Form {
	vals.kind = string(model.KindExam)
	vals.due = time.Now().AddDate(0, 0, 7).Format("2006-01-02 15:04")

	kindOpts := make([]huh.Option[string], 0, len(model.Kinds))
	for _, k := range model.Kinds {
		kindOpts = append(kindOpts, huh.NewOption(string(k), string(k)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&vals.subject),
			huh.NewSelect[string]().
				Title("Kind").
				Options(kindOpts...).
				Value(&vals.kind),
			huh.NewInput().
				Title("Due").
				Description("YYYY-MM-DD HH:MM").
				Validate(validateDue).
				Value(&vals.due),
		),
	)
}

func validateDue(s string) error {
	_, err := parseDue(s)
	return err
}

func parseDue(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("use YYYY-MM-DD or YYYY-MM-DD HH:MM")
}

// healthValues backs the health-info form.
type healthValues struct {
	height  string
	initial string
	target  string
}

func healthValuesFrom(info model.HealthInfo) healthValues {
	v := healthValues{}
	if info.HeightCm > 0 {
		v.height = strconv.FormatFloat(info.HeightCm, 'f', -1, 64)
	}
	if info.InitialWeight > 0 {
		v.initial = strconv.FormatFloat(info.InitialWeight, 'f', -1, 64)
	}
	if info.TargetWeight > 0 {
		v.target = strconv.FormatFloat(info.TargetWeight, 'f', -1, 64)
	}
	return v
}

func newHealthForm(vals *healthValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Height (cm)").
				Validate(validateMeasure).
				Value(&vals.height),
			huh.NewInput().
				Title("Initial weight (kg)").
				Validate(validateMeasure).
				Value(&vals.initial),
			huh.NewInput().
				Title("Target weight (kg)").
				Validate(validateMeasure).
				Value(&vals.target),
		),
	)
}

func validateMeasure(s string) error {
	_, err := parseWeight(s)
	return err
}

func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("enter a positive number")
	}
	return v, nil
}

// updateForms routes messages to whichever modal form is open.
func (a App) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case a.needSetup && a.setupForm != nil:
		form, cmd := a.setupForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.setupForm = f
		}
		switch a.setupForm.State {
		case huh.StateCompleted:
			if err := a.saveSetupConfig(); err != nil {
				a.setFlash("could not save config: " + err.Error())
			}
			a.needSetup = false
			a.setupForm = nil
			return a, nil
		case huh.StateAborted:
			a.needSetup = false
			a.setupForm = nil
			return a, nil
		}
		return a, cmd

	case a.deadlineForm != nil:
		form, cmd := a.deadlineForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.deadlineForm = f
		}
		switch a.deadlineForm.State {
		case huh.StateCompleted:
			due, err := parseDue(a.deadlineVals.due)
			if err == nil {
				kind, kerr := model.ParseDeadlineKind(a.deadlineVals.kind)
				if kerr != nil {
					kind = model.KindOther
				}
				_, err = a.board.AddDeadline(a.deadlineVals.subject, kind, due)
			}
			a.do(err)
			a.deadlineForm = nil
			return a, nil
		case huh.StateAborted:
			a.deadlineForm = nil
			return a, nil
		}
		return a, cmd

	case a.healthForm != nil:
		form, cmd := a.healthForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.healthForm = f
		}
		switch a.healthForm.State {
		case huh.StateCompleted:
			height, err1 := parseWeight(a.healthVals.height)
			initial, err2 := parseWeight(a.healthVals.initial)
			target, err3 := parseWeight(a.healthVals.target)
			if err1 == nil && err2 == nil && err3 == nil {
				a.do(a.board.SetHealthInfo(height, initial, target))
			} else {
				a.setFlash("invalid measurement")
			}
			a.healthForm = nil
			return a, nil
		case huh.StateAborted:
			a.healthForm = nil
			return a, nil
		}
		return a, cmd
	}
	return a, nil
}
