package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"folio/internal/domain"
)

func fill(f *Form, values domain.Values) {
	for k, v := range values {
		f.HandleChange(k, v)
	}
}

func TestFormSubmitRejectsInvalidValues(t *testing.T) {
	f := NewForm()
	fill(f, domain.Values{
		domain.FieldFullName: "Jo",
		domain.FieldEmail:    "invalid-email",
		domain.FieldMessage:  "short",
	})

	_, ok := f.HandleSubmit()
	assert.False(t, ok)

	want := domain.Errors{
		domain.FieldFullName: "Full name must be at least 3 characters.",
		domain.FieldEmail:    "Please enter a valid email address.",
		domain.FieldMessage:  "Message must be at least 10 characters.",
	}
	st := f.State()
	if diff := cmp.Diff(want, st.Visible); diff != "" {
		t.Fatalf("visible errors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Jo", f.Value(domain.FieldFullName), "values are kept on rejection")
	assert.Empty(t, f.SubmitStatus())
	for _, field := range domain.Fields {
		assert.True(t, st.Touched[field], "field %s touched", field)
	}
}

func TestFormBlurShowsRequiredError(t *testing.T) {
	f := NewForm()
	assert.False(t, f.ErrorVisible(domain.FieldFullName), "untouched fields never show errors")

	f.HandleBlur(domain.FieldFullName)
	assert.True(t, f.ErrorVisible(domain.FieldFullName))
	assert.Equal(t, "Full name is required.", f.VisibleError(domain.FieldFullName))
}

func TestFormSubjectNeverShowsError(t *testing.T) {
	f := NewForm()
	for _, v := range []string{"", " ", "@@", "a very long subject line"} {
		f.HandleChange(domain.FieldSubject, v)
		f.HandleBlur(domain.FieldSubject)
		assert.False(t, f.ErrorVisible(domain.FieldSubject), "value %q", v)
	}
}

func TestFormChangeDoesNotRecomputeErrors(t *testing.T) {
	f := NewForm()
	f.HandleBlur(domain.FieldEmail)
	assert.Equal(t, "Email is required.", f.VisibleError(domain.FieldEmail))

	f.HandleChange(domain.FieldEmail, "john@example.com")
	assert.Equal(t, "Email is required.", f.VisibleError(domain.FieldEmail))

	f.HandleBlur(domain.FieldEmail)
	assert.Empty(t, f.VisibleError(domain.FieldEmail))
}

func TestFormSuccessfulSubmissionResets(t *testing.T) {
	f := NewForm()
	input := domain.Values{
		domain.FieldFullName: "John Doe",
		domain.FieldEmail:    "john@example.com",
		domain.FieldPhone:    "+1 555 123 4567",
		domain.FieldMessage:  "This is a valid contact message.",
	}
	fill(f, input)
	assert.True(t, f.IsSubmitEnabled())

	submitted, ok := f.HandleSubmit()
	assert.True(t, ok)
	assert.Equal(t, "John Doe", submitted[domain.FieldFullName])

	st := f.State()
	assert.Empty(t, st.Errors)
	assert.Empty(t, st.Touched)
	assert.Equal(t, domain.EmptyValues(), st.Values)
	assert.Equal(t, domain.SubmitSuccessMessage, st.SubmitStatus)
	assert.False(t, st.SubmitEnabled)
}

func TestFormFailedSubmitClearsEarlierSuccess(t *testing.T) {
	f := NewForm()
	fill(f, domain.Values{
		domain.FieldFullName: "John Doe",
		domain.FieldEmail:    "john@example.com",
		domain.FieldMessage:  "This is a valid contact message.",
	})
	_, ok := f.HandleSubmit()
	assert.True(t, ok)

	_, ok = f.HandleSubmit()
	assert.False(t, ok)
	assert.Empty(t, f.SubmitStatus())
}

func TestFormPhoneOptionality(t *testing.T) {
	f := NewForm()
	f.HandleBlur(domain.FieldPhone)
	assert.False(t, f.ErrorVisible(domain.FieldPhone))

	f.HandleChange(domain.FieldPhone, "abc123")
	f.HandleBlur(domain.FieldPhone)
	assert.Equal(t, "Phone number must contain only numbers and basic symbols.", f.VisibleError(domain.FieldPhone))
}

func TestFormSubmitEnabledIsDerived(t *testing.T) {
	f := NewForm()
	assert.False(t, f.IsSubmitEnabled())

	fill(f, domain.Values{
		domain.FieldFullName: "John Doe",
		domain.FieldEmail:    "john@example.com",
		domain.FieldMessage:  "This is a valid contact message.",
	})
	assert.True(t, f.IsSubmitEnabled())

	f.HandleChange(domain.FieldPhone, "abc123")
	assert.False(t, f.IsSubmitEnabled(), "no blur needed for the derived predicate")

	f.HandleChange(domain.FieldPhone, "")
	f.HandleChange(domain.FieldMessage, "   ")
	assert.False(t, f.IsSubmitEnabled())
}
