package core

import "folio/internal/domain"

// FormState is a snapshot of a contact form for rendering.
type FormState struct {
	Values        domain.Values
	Errors        domain.Errors
	Touched       domain.Touched
	Visible       domain.Errors
	SubmitStatus  string
	SubmitEnabled bool
}

// Form tracks values, errors and touched flags of the contact form.
// Errors are recomputed on blur and submit only, so typing never changes
// them. Form is not safe for concurrent use.
type Form struct {
	values       domain.Values
	errors       domain.Errors
	touched      domain.Touched
	submitStatus string
}

// NewForm returns a form with every field empty and untouched.
func NewForm() *Form {
	return &Form{
		values:  domain.EmptyValues(),
		errors:  make(domain.Errors),
		touched: make(domain.Touched),
	}
}

// HandleChange stores the new value of field.
func (f *Form) HandleChange(field domain.FieldName, value string) {
	f.values[field] = value
}

// HandleBlur marks field touched and recomputes its error.
func (f *Form) HandleBlur(field domain.FieldName) {
	f.touched[field] = true
	if msg := domain.ValidateField(field, f.values[field]); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
	}
}

// HandleSubmit validates every field and touches them all. On failure the
// values are kept and any earlier success message is cleared. On success
// the form resets, the success message is set, and the submitted values
// are returned.
func (f *Form) HandleSubmit() (domain.Values, bool) {
	f.errors = domain.ComputeErrors(f.values)
	for _, field := range domain.Fields {
		f.touched[field] = true
	}
	if len(f.errors) > 0 {
		f.submitStatus = ""
		return nil, false
	}

	submitted := f.values.Clone()
	f.values = domain.EmptyValues()
	f.errors = make(domain.Errors)
	f.touched = make(domain.Touched)
	f.submitStatus = domain.SubmitSuccessMessage
	return submitted, true
}

// IsSubmitEnabled is derived from the current values on every call.
func (f *Form) IsSubmitEnabled() bool {
	return len(domain.ComputeErrors(f.values)) == 0 &&
		f.values[domain.FieldFullName] != "" &&
		f.values[domain.FieldEmail] != "" &&
		f.values[domain.FieldMessage] != ""
}

// ErrorVisible reports whether field shows an inline error.
func (f *Form) ErrorVisible(field domain.FieldName) bool {
	return f.touched[field] && f.errors[field] != ""
}

// VisibleError returns the error shown for field, or "".
func (f *Form) VisibleError(field domain.FieldName) string {
	if !f.ErrorVisible(field) {
		return ""
	}
	return f.errors[field]
}

// Value returns the current value of field.
func (f *Form) Value(field domain.FieldName) string {
	return f.values[field]
}

// SubmitStatus returns the success message, or "" while editing.
func (f *Form) SubmitStatus() string {
	return f.submitStatus
}

// State returns a copy of the form state.
func (f *Form) State() FormState {
	st := FormState{
		Values:        f.values.Clone(),
		Errors:        make(domain.Errors, len(f.errors)),
		Touched:       make(domain.Touched, len(f.touched)),
		Visible:       make(domain.Errors),
		SubmitStatus:  f.submitStatus,
		SubmitEnabled: f.IsSubmitEnabled(),
	}
	for k, v := range f.errors {
		st.Errors[k] = v
	}
	for k, v := range f.touched {
		st.Touched[k] = v
	}
	for _, field := range domain.Fields {
		if msg := f.VisibleError(field); msg != "" {
			st.Visible[field] = msg
		}
	}
	return st
}
