package list

import (
	"bytes"
	"context"
	"io"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/client"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/form"
	"github.com/hashicorp/go-hclog"
)

// ReportFilename is the fixed name the exported PDF report is saved under.
const ReportFilename = "reporte_productos.pdf"

// Confirmer answers blocking yes/no prompts in front of destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Saver persists an exported report under the given filename.
type Saver interface {
	Save(name string, contents io.Reader) error
}

// Controller owns the in-memory product collection and drives it against the
// backend. It reloads the full collection after create/update but patches the
// collection locally after delete/restore; the asymmetry is deliberate, it is
// the behavior the backend contract was built around.
//
// Failures never escape as errors: the underlying detail is logged and the
// user-facing outcome is a transient notification.
type Controller struct {
	client    client.ProductClient
	confirmer Confirmer
	saver     Saver
	notes     *Notifier
	validator *domain.Validation
	logger    hclog.Logger

	products domain.Products
	form     *form.Form
}

func NewController(
	c client.ProductClient,
	confirmer Confirmer,
	saver Saver,
	notes *Notifier,
	logger hclog.Logger) *Controller {
	return &Controller{
		client:    c,
		confirmer: confirmer,
		saver:     saver,
		notes:     notes,
		validator: domain.NewValidation(),
		logger:    logger,
	}
}

// Products returns the current in-memory collection.
func (c *Controller) Products() domain.Products { return c.products }

// Form returns the open form, or nil when the list view is idle.
func (c *Controller) Form() *form.Form { return c.form }

func (c *Controller) FormVisible() bool { return c.form != nil }

func (c *Controller) ErrorMessage() string { return c.notes.ErrorMessage() }

func (c *Controller) SuccessMessage() string { return c.notes.SuccessMessage() }

// Load replaces the collection with a fresh full load from the backend.
func (c *Controller) Load(ctx context.Context) {
	products, err := c.client.ListAll(ctx)
	if err != nil {
		c.logger.Error("Unable to load products", "error", err)
		c.notes.Error("Could not load the products. Please try again.")
		return
	}
	c.products = products
}

// Add opens the form in create mode.
func (c *Controller) Add() {
	c.form = form.NewCreate(c.validator)
	c.notes.Clear()
}

// Edit opens the form in edit mode for the record with the given code. An
// inactive product is refused with a transient error and no state change.
func (c *Controller) Edit(code string) {
	i := c.findIndex(code)
	if i == -1 {
		c.logger.Error("Edit requested for unknown product", "code", code)
		c.notes.Error("Could not find the product. Please try again.")
		return
	}

	target := c.products[i]
	if target.Status == domain.StatusInactive {
		c.notes.Error("An inactive product cannot be edited.")
		return
	}

	c.form = form.NewEdit(c.validator, target)
	c.notes.Clear()
}

// Save submits the open form. A local validation failure returns the field
// errors and leaves the form open without touching the network. Otherwise the
// record is routed to update when the form is editing and to create when it
// is not; success triggers a full reload, hides the form and raises a success
// notification, while a backend failure raises an error notification and
// keeps the form open.
func (c *Controller) Save(ctx context.Context) domain.ValidationErrors {
	if c.form == nil {
		return nil
	}

	product, errs := c.form.Submit()
	if len(errs) > 0 {
		return errs
	}

	var err error
	var action string
	if c.form.Mode() == form.ModeEdit {
		action = "updated"
		_, err = c.client.Update(ctx, c.form.Original().Code, product)
	} else {
		action = "created"
		_, err = c.client.Create(ctx, product)
	}

	if err != nil {
		c.logger.Error("Unable to save product", "code", product.Code, "error", err)
		if action == "updated" {
			c.notes.Error("Could not update the product. Please try again.")
		} else {
			c.notes.Error("Could not create the product. Please try again.")
		}
		return nil
	}

	c.Load(ctx)
	c.form = nil
	c.notes.Success("Product " + action + " successfully.")
	return nil
}

// Cancel closes the form without saving.
func (c *Controller) Cancel() {
	if c.form != nil {
		c.form.Cancel()
		c.form = nil
	}
	c.notes.Clear()
}

// SoftDelete asks for confirmation and marks the product inactive. On success
// only the targeted record's status is rewritten locally; no reload occurs.
func (c *Controller) SoftDelete(ctx context.Context, code string) {
	if !c.confirmer.Confirm("Soft delete this product? It will become inactive and can be restored later.") {
		return
	}

	if err := c.client.SoftDelete(ctx, code); err != nil {
		c.logger.Error("Unable to soft delete product", "code", code, "error", err)
		c.notes.Error("Could not delete the product. Please try again.")
		return
	}

	c.patchStatus(code, domain.StatusInactive)
	c.notes.Success("Product deactivated successfully.")
}

// Restore asks for confirmation and marks the product active again. The
// client performs no pre-check: restoring an already active product simply
// re-confirms its status after the server succeeds.
func (c *Controller) Restore(ctx context.Context, code string) {
	if !c.confirmer.Confirm("Restore this product? It will become active again.") {
		return
	}

	if err := c.client.Restore(ctx, code); err != nil {
		c.logger.Error("Unable to restore product", "code", code, "error", err)
		c.notes.Error("Could not restore the product. Please try again.")
		return
	}

	c.patchStatus(code, domain.StatusActive)
	c.notes.Success("Product restored successfully.")
}

// HardDelete asks for confirmation with a stronger warning and permanently
// removes the record from the backend and the local collection.
func (c *Controller) HardDelete(ctx context.Context, code string) {
	if !c.confirmer.Confirm("WARNING: permanently delete this product? This action cannot be undone.") {
		return
	}

	if err := c.client.HardDelete(ctx, code); err != nil {
		c.logger.Error("Unable to hard delete product", "code", code, "error", err)
		c.notes.Error("Could not permanently delete the product. Please try again.")
		return
	}

	if i := c.findIndex(code); i != -1 {
		c.products = append(c.products[:i], c.products[i+1:]...)
	}
	c.notes.Success("Product permanently deleted.")
}

// ExportReport downloads the PDF report and saves it under ReportFilename.
func (c *Controller) ExportReport(ctx context.Context) {
	pdf, err := c.client.ExportReportPDF(ctx)
	if err != nil {
		c.logger.Error("Unable to export report", "error", err)
		c.notes.Error("Could not generate the report. Please try again.")
		return
	}

	if err := c.saver.Save(ReportFilename, bytes.NewReader(pdf)); err != nil {
		c.logger.Error("Unable to save report", "filename", ReportFilename, "error", err)
		c.notes.Error("Could not generate the report. Please try again.")
		return
	}

	c.notes.Success("Report generated successfully.")
}

// Close cancels any pending notification expiry.
func (c *Controller) Close() {
	c.notes.Close()
}

func (c *Controller) patchStatus(code string, status domain.Status) {
	if i := c.findIndex(code); i != -1 {
		c.products[i].Status = status
	}
}

func (c *Controller) findIndex(code string) int {
	for i, p := range c.products {
		if p.Code == code {
			return i
		}
	}
	return -1
}
