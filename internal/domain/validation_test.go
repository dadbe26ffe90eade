package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		field FieldName
		value string
		want  string
	}{
		{"full name empty", FieldFullName, "", "Full name is required."},
		{"full name blank", FieldFullName, "   ", "Full name is required."},
		{"full name short", FieldFullName, "Jo", "Full name must be at least 3 characters."},
		{"full name short after trim", FieldFullName, "  Jo  ", "Full name must be at least 3 characters."},
		{"full name ok", FieldFullName, "Joe", ""},
		{"email empty", FieldEmail, "", "Email is required."},
		{"email invalid", FieldEmail, "invalid-email", "Please enter a valid email address."},
		{"email missing tld", FieldEmail, "john@example", "Please enter a valid email address."},
		{"email ok with padding", FieldEmail, " john@example.com ", ""},
		{"email inner nbsp", FieldEmail, "jo\u00a0hn@example.com", "Please enter a valid email address."},
		{"email inner ideographic space", FieldEmail, "john@exa\u3000mple.com", "Please enter a valid email address."},
		{"phone empty", FieldPhone, "", ""},
		{"phone blank", FieldPhone, "  ", ""},
		{"phone letters", FieldPhone, "abc123", "Phone number must contain only numbers and basic symbols."},
		{"phone too short", FieldPhone, "12345", "Phone number must contain only numbers and basic symbols."},
		{"phone ok", FieldPhone, "+1 555 123 4567", ""},
		{"phone ok parens", FieldPhone, "(555) 123-4567", ""},
		{"phone ok nbsp separators", FieldPhone, "555\u00a0123\u00a04567", ""},
		{"phone ok thin space separators", FieldPhone, "555\u2009123\u20094567", ""},
		{"message empty", FieldMessage, "", "Message is required."},
		{"message short", FieldMessage, "short", "Message must be at least 10 characters."},
		{"message ok", FieldMessage, "This is a valid contact message.", ""},
		{"subject anything", FieldSubject, "", ""},
		{"subject garbage", FieldSubject, "@@@", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateField(tt.field, tt.value))
		})
	}
}

func TestComputeErrorsOnlyReportsFailures(t *testing.T) {
	values := Values{
		FieldFullName: "Jo",
		FieldEmail:    "invalid-email",
		FieldPhone:    "",
		FieldSubject:  "",
		FieldMessage:  "short",
	}
	want := Errors{
		FieldFullName: "Full name must be at least 3 characters.",
		FieldEmail:    "Please enter a valid email address.",
		FieldMessage:  "Message must be at least 10 characters.",
	}
	if diff := cmp.Diff(want, ComputeErrors(values)); diff != "" {
		t.Fatalf("ComputeErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeErrorsValidForm(t *testing.T) {
	values := Values{
		FieldFullName: "John Doe",
		FieldEmail:    "john@example.com",
		FieldPhone:    "+1 555 123 4567",
		FieldMessage:  "This is a valid contact message.",
	}
	assert.Empty(t, ComputeErrors(values))
}

func TestChainShortCircuits(t *testing.T) {
	calls := 0
	counting := func(string) string {
		calls++
		return "second"
	}
	rule := Chain(Required("first"), counting)
	assert.Equal(t, "first", rule(""))
	assert.Equal(t, 0, calls)
	assert.Equal(t, "second", rule("x"))
	assert.Equal(t, 1, calls)
}

func TestParseFieldName(t *testing.T) {
	f, err := ParseFieldName("email")
	require.NoError(t, err)
	assert.Equal(t, FieldEmail, f)

	_, err = ParseFieldName("address")
	assert.ErrorIs(t, err, ErrUnknownField)
}
