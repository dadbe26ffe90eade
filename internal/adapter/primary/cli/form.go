package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"folio/internal/adapter/secondary/sink"
	"folio/internal/core"
	"folio/internal/domain"
	"folio/internal/logging"
)

var (
	errInvalidForm = errors.New("contact form has errors")
	errAborted     = errors.New("aborted")
)

var fieldLabels = map[domain.FieldName]string{
	domain.FieldFullName: "Full Name",
	domain.FieldEmail:    "Email",
	domain.FieldPhone:    "Phone",
	domain.FieldSubject:  "Subject",
	domain.FieldMessage:  "Message",
}

// printForm writes the submit outcome of form.
func printForm(w io.Writer, form *core.Form) {
	if status := form.SubmitStatus(); status != "" {
		fmt.Fprintln(w, status)
		return
	}
	for _, field := range domain.Fields {
		if msg := form.VisibleError(field); msg != "" {
			fmt.Fprintf(w, "%-10s %s\n", fieldLabels[field]+":", msg)
		}
	}
}

func newValidateCmd() *cobra.Command {
	values := make(map[domain.FieldName]*string, len(domain.Fields))
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate contact form values and print the errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := core.NewForm()
			for _, field := range domain.Fields {
				form.HandleChange(field, *values[field])
			}
			_, ok := form.HandleSubmit()
			printForm(cmd.OutOrStdout(), form)
			if !ok {
				return errInvalidForm
			}
			return nil
		},
	}
	flags := map[domain.FieldName]string{
		domain.FieldFullName: "full-name",
		domain.FieldEmail:    "email",
		domain.FieldPhone:    "phone",
		domain.FieldSubject:  "subject",
		domain.FieldMessage:  "message",
	}
	for _, field := range domain.Fields {
		values[field] = cmd.Flags().String(flags[field], "", fieldLabels[field])
	}
	return cmd
}

type question struct {
	Message   string
	Multiline bool
	Validate  func(string) error
}

// prompter asks one question. Tests swap in a scripted implementation.
type prompter interface {
	Ask(ctx context.Context, q question) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(ctx context.Context, q question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var prompt survey.Prompt = &survey.Input{Message: q.Message}
	if q.Multiline {
		prompt = &survey.Multiline{Message: q.Message}
	}
	var opts []survey.AskOpt
	if q.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return q.Validate(s)
		}))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}

var newPrompter = func() prompter { return surveyPrompter{} }

func fieldValidator(field domain.FieldName) func(string) error {
	return func(value string) error {
		if msg := domain.ValidateField(field, value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func newContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Fill in the contact form interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := newPrompter()
			form := core.NewForm()
			for _, field := range domain.Fields {
				ans, err := p.Ask(ctx, question{
					Message:   fieldLabels[field] + ":",
					Multiline: field == domain.FieldMessage,
					Validate:  fieldValidator(field),
				})
				if err != nil {
					return err
				}
				form.HandleChange(field, ans)
				form.HandleBlur(field)
			}

			submitted, ok := form.HandleSubmit()
			printForm(cmd.OutOrStdout(), form)
			if !ok {
				return errInvalidForm
			}
			return sink.NewLogSink(logging.L()).Deliver(ctx, domain.Submission{
				SessionID:   uuid.NewString(),
				Values:      submitted,
				SubmittedAt: time.Now(),
			})
		},
	}
}
