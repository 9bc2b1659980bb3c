package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"memo-manager/internal/memo"
)

// termView drives the controller from a terminal. There are no forms to
// show or scroll, so those calls are no-ops; alerts go to out and
// confirmations are read from in.
type termView struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newTermView(in io.Reader, out io.Writer, assumeYes bool) *termView {
	return &termView{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

// The list is printed from the controller's last rendered memos, and
// commands call the controller directly instead of submitting forms.
func (v *termView) ReplaceChildren(string)      {}
func (v *termView) BindForms(memo.FormHandlers) {}

func (v *termView) Alert(_ context.Context, msg string) {
	fmt.Fprintf(v.out, "! %s\n", msg)
}

// Confirm prompts on out and accepts y or yes. EOF counts as no.
func (v *termView) Confirm(_ context.Context, msg string) bool {
	if v.assumeYes {
		return true
	}
	fmt.Fprintf(v.out, "%s [y/N]: ", msg)
	line, err := v.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(v.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (v *termView) ClearCreateForm()         {}
func (v *termView) FillEditForm(_, _ string) {}
func (v *termView) ClearEditForm()           {}
func (v *termView) ShowCreateForm()          {}
func (v *termView) ShowEditForm()            {}
func (v *termView) ScrollToEditForm()        {}
func (v *termView) ScrollToTop()             {}
