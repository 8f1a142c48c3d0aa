package wizard

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/syedwebdesign/intake_backend/internal/wizard"
)

func NewRunCommand() *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill out the intake form in the terminal and submit it",
		RunE: func(cmd *cobra.Command, args []string) error {
			submitter := httpSubmitter(endpoint, &http.Client{Timeout: timeout})
			return runWizard(cmd.Context(), os.Stdin, os.Stdout, submitter)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api/v1/onboarding", "onboarding endpoint URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "submission request timeout")

	return cmd
}

// httpSubmitter posts the payload as JSON and treats any non-200 response
// as a retryable failure.
func httpSubmitter(endpoint string, client *http.Client) wizard.SubmitterFunc {
	return func(ctx context.Context, p wizard.Payload) error {
		body, err := json.Marshal(p)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			var apiErr struct {
				Error   string   `json:"error"`
				Details []string `json:"details"`
			}
			if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
				return fmt.Errorf("submission rejected (%d): %s %s", resp.StatusCode, apiErr.Error, strings.Join(apiErr.Details, "; "))
			}
			return fmt.Errorf("submission rejected with status %d", resp.StatusCode)
		}
		return nil
	}
}

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(label, current string) string {
	if current != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	if !p.sc.Scan() {
		return current
	}
	s := strings.TrimSpace(p.sc.Text())
	if s == "" {
		return current
	}
	return s
}

func (p *prompter) choice(label string, options []string, current string) string {
	fmt.Fprintln(p.out, label)
	for i, o := range options {
		marker := " "
		if o == current {
			marker = "*"
		}
		fmt.Fprintf(p.out, " %s %2d) %s\n", marker, i+1, o)
	}
	fmt.Fprint(p.out, "Choose a number: ")
	if !p.sc.Scan() {
		return current
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.sc.Text()))
	if err != nil || n < 1 || n > len(options) {
		return current
	}
	return options[n-1]
}

func (p *prompter) yes(label string) bool {
	fmt.Fprintf(p.out, "%s (y/n): ", label)
	if !p.sc.Scan() {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(p.sc.Text()))
	return s == "y" || s == "yes"
}

// runWizard drives the state machine from terminal input. Each iteration
// prompts the current step's fields, then tries to advance; validation
// errors print per field and the step repeats.
func runWizard(ctx context.Context, in io.Reader, out io.Writer, submitter wizard.Submitter) error {
	w := wizard.New(submitter)
	p := &prompter{sc: bufio.NewScanner(in), out: out}

	titles := map[int]string{
		1: "Business & Contact",
		2: "Website Purpose",
		3: "Design Preferences",
		4: "Content & Pages",
		5: "Domain & Agreement",
	}

	for w.Status() != wizard.StatusSucceeded {
		step := w.Step()
		fmt.Fprintf(out, "\n--- Step %d of %d: %s ---\n", step, wizard.LastStep, titles[step])

		promptStep(p, w, step)

		if step < wizard.LastStep {
			if errs := w.Continue(); len(errs) > 0 {
				printFieldErrors(out, errs)
			}
			continue
		}

		errs, err := w.Submit(ctx)
		if len(errs) > 0 {
			printFieldErrors(out, errs)
			continue
		}
		if err != nil {
			// Generic notification for the user; the cause is in the error.
			fmt.Fprintf(out, "Submission failed, please retry. (%v)\n", err)
			if !p.yes("Try again?") {
				return err
			}
		}
	}

	form := w.Form()
	fmt.Fprintf(out, "\nThank you! Your website request has been received.\n")
	fmt.Fprintf(out, "We've sent a confirmation email to %s.\n", form.Email)
	return nil
}

func promptStep(p *prompter, w *wizard.Wizard, step int) {
	w.Update(func(f *wizard.Form) {
		switch step {
		case 1:
			f.FullName = p.line("Full name", f.FullName)
			f.Email = p.line("Email", f.Email)
			f.Phone = p.line("Phone", f.Phone)
			f.BusinessName = p.line("Business name", f.BusinessName)
			f.BusinessType = p.choice("Business type:", wizard.BusinessTypes, f.BusinessType)
		case 2:
			f.WebsitePurpose = p.choice("Website purpose:", wizard.WebsitePurposes, f.WebsitePurpose)
			f.TargetAudience = p.line("Target audience", f.TargetAudience)
			f.MainGoal = p.line("Main goal", f.MainGoal)
		case 3:
			f.DesignStyle = p.choice("Design style:", wizard.DesignStyles, f.DesignStyle)
			f.ColorPreference = p.line("Color preference (optional)", f.ColorPreference)
			f.ReferenceWebsites = p.line("Reference websites (optional)", f.ReferenceWebsites)
		case 4:
			fmt.Fprintf(p.out, "Selected pages: %s\n", strings.Join(f.RequiredPages, ", "))
			for p.yes("Toggle a page?") {
				page := p.choice("Pages:", wizard.PageOptions, "")
				f.TogglePage(page)
				fmt.Fprintf(p.out, "Selected pages: %s\n", strings.Join(f.RequiredPages, ", "))
			}
			f.HasContent = p.choice("Do you have content ready?", wizard.ContentOptions, f.HasContent)
			f.SpecialFeatures = p.line("Special features (optional)", f.SpecialFeatures)
		case 5:
			f.DomainPreference = p.choice("Domain status:", wizard.DomainOptions, f.DomainPreference)
			if f.DomainPreference == "have-domain" {
				f.ExistingDomain = p.line("Existing domain", f.ExistingDomain)
			}
			f.Timeline = p.choice("Timeline:", wizard.TimelineOptions, f.Timeline)
			f.AgreeToTerms = p.yes("Do you agree to the terms?")
		}
	})

	if step > wizard.FirstStep && p.yes("Go back a step?") {
		w.Back()
	}
}

func printFieldErrors(out io.Writer, errs map[string]string) {
	fmt.Fprintln(out, "Please fix the following:")
	for field, msg := range errs {
		fmt.Fprintf(out, "  - %s: %s\n", field, msg)
	}
}
