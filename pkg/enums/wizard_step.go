package enums

import "fmt"

// WizardStep identifies one of the six linear configurator steps.
type WizardStep int

const (
	WizardStepModel WizardStep = iota + 1
	WizardStepTheme
	WizardStepExternalColors
	WizardStepManufacturerOptions
	WizardStepVanariOptions
	WizardStepSaveShare
)

const (
	// WizardStepFirst is the step a fresh session starts on.
	WizardStepFirst = WizardStepModel
	// WizardStepLast is the save-and-share step.
	WizardStepLast = WizardStepSaveShare
)

var wizardStepNames = map[WizardStep]string{
	WizardStepModel:               "model",
	WizardStepTheme:               "theme",
	WizardStepExternalColors:      "external_colors",
	WizardStepManufacturerOptions: "manufacturer_options",
	WizardStepVanariOptions:       "vanari_options",
	WizardStepSaveShare:           "save_share",
}

// String implements fmt.Stringer.
func (s WizardStep) String() string {
	if name, ok := wizardStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step_%d", int(s))
}

// IsValid reports whether the step is within the wizard's range.
func (s WizardStep) IsValid() bool {
	return s >= WizardStepFirst && s <= WizardStepLast
}

// ParseWizardStep converts a step number into a WizardStep.
func ParseWizardStep(value int) (WizardStep, error) {
	step := WizardStep(value)
	if !step.IsValid() {
		return 0, fmt.Errorf("invalid wizard step %d", value)
	}
	return step, nil
}
