package interview

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-poline/pkg/lookup"
	"github.com/goliatone/go-poline/pkg/order"
	"github.com/goliatone/go-poline/pkg/templates"
	"go.uber.org/zap"
)

const (
	exitChoice    = "Exit"
	otherQuantity = "Other"
	maxQuickPick  = 5
)

// Controller runs the order-line interview against a PromptDriver.
type Controller struct {
	driver   PromptDriver
	lookup   lookup.Lookup
	logger   *zap.Logger
	sanitize func(string) string
}

// New constructs a Controller with the survey driver and no lookup.
func New(options ...Option) *Controller {
	c := &Controller{
		driver:   NewSurveyDriver(),
		logger:   zap.NewNop(),
		sanitize: SanitizeText,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Info forwards a message to the driver.
func (c *Controller) Info(ctx context.Context, msg string) error {
	return c.driver.Info(ctx, msg)
}

// SelectTemplate shows the template menu. Choosing "Exit" returns ErrAborted.
func (c *Controller) SelectTemplate(ctx context.Context, choices []templates.Template) (templates.Template, error) {
	if len(choices) == 0 {
		return templates.Template{}, ErrNoChoices
	}
	options := make([]string, 0, len(choices)+1)
	for _, tpl := range choices {
		options = append(options, tpl.Label())
	}
	options = append(options, exitChoice)

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:  "Select a template:",
		Options:  options,
		PageSize: 15,
	})
	if err != nil {
		return templates.Template{}, err
	}
	if idx < 0 || idx >= len(choices) {
		return templates.Template{}, ErrAborted
	}
	return choices[idx], nil
}

// Collect asks for vendor, bibliographic and pricing fields in order.
func (c *Controller) Collect(ctx context.Context) (order.UserInput, error) {
	var in order.UserInput
	var err error

	if in.VendorCode, err = c.ask(ctx, InputConfig{Message: "Vendor code (e.g., hacky-m):"},
		order.ValidateRequired("vendor_code", "Vendor code")); err != nil {
		return order.UserInput{}, err
	}
	if in.VendorAccount, err = c.ask(ctx, InputConfig{Message: "Vendor account (e.g., hacky-m):"},
		order.ValidateRequired("vendor_account", "Vendor account")); err != nil {
		return order.UserInput{}, err
	}
	if in.VendorReference, err = c.ask(ctx, InputConfig{Message: "Vendor reference/invoice number:"}, nil); err != nil {
		return order.UserInput{}, err
	}

	defaults, scn, err := c.prefill(ctx)
	if err != nil {
		return order.UserInput{}, err
	}
	in.SystemControlNumber = scn

	if in.Title, err = c.ask(ctx, InputConfig{Message: "Title:", Default: defaults.Title},
		order.ValidateRequired("title", "Title")); err != nil {
		return order.UserInput{}, err
	}
	if in.Author, err = c.ask(ctx, InputConfig{Message: "Author (optional):", Default: defaults.Author}, nil); err != nil {
		return order.UserInput{}, err
	}
	if in.ISBN, err = c.ask(ctx, InputConfig{Message: "ISBN (optional):", Default: defaults.ISBN}, order.ValidateISBN); err != nil {
		return order.UserInput{}, err
	}
	if in.Publisher, err = c.ask(ctx, InputConfig{Message: "Publisher (optional):", Default: defaults.Publisher}, nil); err != nil {
		return order.UserInput{}, err
	}
	if in.PublicationYear, err = c.ask(ctx, InputConfig{Message: "Publication year (optional):", Default: defaults.PublicationYear},
		order.ValidateYear); err != nil {
		return order.UserInput{}, err
	}

	price, err := c.ask(ctx, InputConfig{Message: "Price (e.g., 25.99):"}, order.ValidatePrice)
	if err != nil {
		return order.UserInput{}, err
	}
	in.Price = order.FormatPrice(price)

	if in.Quantity, err = c.askQuantity(ctx); err != nil {
		return order.UserInput{}, err
	}

	code, err := c.ask(ctx, InputConfig{
		Message: "Reporting code (required):",
		Help:    "Start typing and press tab to complete a subject",
		Suggest: suggestReportingCodes,
	}, order.ValidateReportingCode)
	if err != nil {
		return order.UserInput{}, err
	}
	if in.ReportingCode, err = order.ParseReportingCode(code); err != nil {
		return order.UserInput{}, err
	}

	return in, nil
}

// CollectReceiving asks for receiving note categories and then for the
// extra fields each selected category needs.
func (c *Controller) CollectReceiving(ctx context.Context) (order.Selection, order.ConditionalData, error) {
	var cond order.ConditionalData

	sel, err := c.askCategories(ctx)
	if err != nil {
		return order.Selection{}, cond, err
	}
	if sel.IsNone() {
		return sel, cond, nil
	}

	if sel.Has(order.CategoryInterestedUser) {
		_ = c.driver.Info(ctx, "Interested User selected - collecting user details...")
		user, err := c.askInterestedUser(ctx)
		if err != nil {
			return order.Selection{}, order.ConditionalData{}, err
		}
		cond.InterestedUser = &user
	}

	if sel.Has(order.CategoryNote) {
		_ = c.driver.Info(ctx, "Note selected - collecting additional notes...")
		text, err := c.ask(ctx, InputConfig{Message: "Additional notes:"}, nil)
		if err != nil {
			return order.Selection{}, order.ConditionalData{}, err
		}
		text = c.sanitize(text)
		cond.Note = &text
	}

	if sel.Has(order.CategoryReserve) {
		_ = c.driver.Info(ctx, "Reserve selected - collecting reserve details...")
		text, err := c.ask(ctx, InputConfig{Message: "Reserve note (optional):"}, nil)
		if err != nil {
			return order.Selection{}, order.ConditionalData{}, err
		}
		text = c.sanitize(text)
		cond.ReserveNote = &text
	}

	return sel, cond, nil
}

// ConfirmSave asks whether the record should be written to filename.
func (c *Controller) ConfirmSave(ctx context.Context, filename string) (bool, error) {
	return c.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Save this PO to %s?", filename),
		Default: true,
	})
}

// ConfirmAnother asks whether to start a new record.
func (c *Controller) ConfirmAnother(ctx context.Context) (bool, error) {
	return c.driver.Confirm(ctx, ConfirmConfig{Message: "Create another PO?", Default: true})
}

// ask re-prompts until validate accepts the answer. Answers are trimmed.
func (c *Controller) ask(ctx context.Context, cfg InputConfig, validate func(string) error) (string, error) {
	cfg.Validator = validate
	for {
		resp, err := c.driver.Input(ctx, cfg)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(resp); err != nil {
				_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", promptLabel(cfg.Message), err))
				continue
			}
		}
		return strings.TrimSpace(resp), nil
	}
}

func (c *Controller) askQuantity(ctx context.Context) (int, error) {
	options := make([]string, 0, maxQuickPick+1)
	for i := 1; i <= maxQuickPick; i++ {
		options = append(options, strconv.Itoa(i))
	}
	options = append(options, otherQuantity)

	idx, err := c.driver.Select(ctx, SelectConfig{Message: "Quantity:", Options: options})
	if err != nil {
		return 0, err
	}
	if idx >= 0 && idx < maxQuickPick {
		return idx + 1, nil
	}

	raw, err := c.ask(ctx, InputConfig{Message: "Enter quantity:"}, order.ValidateQuantity)
	if err != nil {
		return 0, err
	}
	return order.ParseQuantity(raw)
}

func (c *Controller) askCategories(ctx context.Context) (order.Selection, error) {
	cats := order.Categories()
	options := make([]string, len(cats))
	for i, cat := range cats {
		options[i] = string(cat)
	}

	for {
		indices, err := c.driver.MultiSelect(ctx, SelectConfig{
			Message: "Select receiving note categories (use spacebar to select, enter to confirm):",
			Options: options,
		})
		if err != nil {
			return order.Selection{}, err
		}
		labels := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(options) {
				labels = append(labels, options[idx])
			}
		}
		sel, err := order.ParseSelection(labels)
		if err != nil {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid receiving note categories: %v", err))
			continue
		}
		return sel, nil
	}
}

func (c *Controller) askInterestedUser(ctx context.Context) (order.InterestedUser, error) {
	id, err := c.ask(ctx, InputConfig{Message: "User ID (9 digits):"}, order.ValidateUserID)
	if err != nil {
		return order.InterestedUser{}, err
	}
	notify, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Notify user on receiving activation?"})
	if err != nil {
		return order.InterestedUser{}, err
	}
	hold, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Hold item for user?"})
	if err != nil {
		return order.InterestedUser{}, err
	}
	return order.InterestedUser{UserID: id, Notify: notify, Hold: hold}, nil
}

// prefill runs the optional lookup step. It returns the metadata to use as
// prompt defaults and the identifier to keep as the system control number.
// Lookup failures are reported and swallowed; only prompt errors and context
// cancellation are returned.
func (c *Controller) prefill(ctx context.Context) (lookup.Metadata, string, error) {
	if c.lookup == nil {
		return lookup.Metadata{}, "", nil
	}

	use, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: "Look up bibliographic data by OCLC number? (Recommended - saves typing)",
		Default: true,
	})
	if err != nil || !use {
		return lookup.Metadata{}, "", err
	}

	raw, err := c.ask(ctx, InputConfig{Message: "Enter OCLC number:"}, order.ValidateOCLCNumber)
	if err != nil {
		return lookup.Metadata{}, "", err
	}
	id, err := order.NormalizeOCLCNumber(raw)
	if err != nil {
		return lookup.Metadata{}, "", err
	}

	_ = c.driver.Info(ctx, "Searching bibliographic records...")
	meta, err := c.lookup.Lookup(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		return lookup.Metadata{}, "", err
	case errors.Is(err, lookup.ErrNotFound):
		meta = lookup.Metadata{}
	default:
		c.logger.Warn("metadata lookup failed", zap.String("oclc_number", id), zap.Error(err))
		_ = c.driver.Info(ctx, fmt.Sprintf("Lookup failed: %v", err))
		return lookup.Metadata{}, "", nil
	}

	if meta.Empty() {
		_ = c.driver.Info(ctx, "No data found for that OCLC number")
		return lookup.Metadata{}, "", nil
	}

	c.logger.Debug("metadata lookup hit", zap.String("oclc_number", id))
	var b strings.Builder
	b.WriteString("Found bibliographic data. Retrieved:")
	for _, field := range meta.Fields() {
		fmt.Fprintf(&b, "\n  - %s: %s", field[0], field[1])
	}
	_ = c.driver.Info(ctx, b.String())

	scn := meta.OCLCNumber
	if scn == "" {
		scn = id
	}
	return meta, scn, nil
}

func suggestReportingCodes(toComplete string) []string {
	prefix := strings.ToLower(strings.TrimSpace(toComplete))
	var out []string
	for _, label := range order.ReportingCodeLabels() {
		if strings.HasPrefix(strings.ToLower(label), prefix) {
			out = append(out, label)
		}
	}
	return out
}

func promptLabel(message string) string {
	label := message
	if i := strings.IndexAny(label, "(:"); i > 0 {
		label = label[:i]
	}
	return strings.ToLower(strings.TrimSpace(label))
}
