package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/form"
)

// Console implements the blocking yes/no confirmation gate and the field
// prompts over a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Confirm prints the prompt and blocks for a yes/no answer. Anything other
// than y/yes declines.
func (c *Console) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	answer := strings.ToLower(strings.TrimSpace(c.readLine()))
	return answer == "y" || answer == "yes"
}

// FillForm prompts for every editable field. Current values are kept when the
// user enters nothing; unparsable numbers are left at their zero value so the
// form's validation flags them on submit.
func (c *Console) FillForm(f *form.Form) {
	if f.Mode() == form.ModeEdit {
		fmt.Fprintf(c.out, "Editing %s (code is locked)\n", f.Original().Code)
	} else {
		f.Fields.Code = c.promptString("Code", f.Fields.Code)
	}

	f.Fields.ProviderID = c.promptInt("Provider ID", f.Fields.ProviderID)
	f.Fields.Name = c.promptString("Name", f.Fields.Name)
	f.Fields.Description = c.promptString("Description", f.Fields.Description)
	f.Fields.Unit = c.promptString(fmt.Sprintf("Unit %v", domain.Units), f.Fields.Unit)
	f.Fields.Price = c.promptFloat("Price", f.Fields.Price)
	f.Fields.Stock = c.promptInt("Stock", f.Fields.Stock)

	status := c.promptString("Status (Activo/Inactivo)", string(f.Fields.Status))
	f.Fields.Status = domain.Status(status)
}

// ShowFieldErrors renders inline validation messages for the touched fields.
func (c *Console) ShowFieldErrors(errs domain.ValidationErrors) {
	for _, e := range errs {
		fmt.Fprintf(c.out, "  - %s\n", e.Error())
	}
}

func (c *Console) promptString(label, current string) string {
	fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	if line := strings.TrimSpace(c.readLine()); line != "" {
		return line
	}
	return current
}

func (c *Console) promptInt(label string, current int) int {
	raw := c.promptString(label, strconv.Itoa(current))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func (c *Console) promptFloat(label string, current float64) float64 {
	raw := c.promptString(label, strconv.FormatFloat(current, 'f', -1, 64))
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

func (c *Console) readLine() string {
	if !c.in.Scan() {
		return ""
	}
	return c.in.Text()
}
