package testsupport

import (
	"context"
	"errors"

	"github.com/goliatone/go-poline/pkg/interview"
)

// ErrUnscripted is returned when a prompt has no scripted answer left.
var ErrUnscripted = errors.New("testsupport: no answer scripted")

// Driver is a scripted interview.PromptDriver. Each prompt kind consumes its
// own queue; Err, when set, is returned by the prompt whose message matches
// ErrOn.
type Driver struct {
	Inputs   []string
	Selects  []int
	Multis   [][]int
	Confirms []bool

	ErrOn string
	Err   error

	// Recorded interactions.
	Messages []string
	Infos    []string
	Defaults map[string]string

	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
}

var _ interview.PromptDriver = (*Driver)(nil)

func (d *Driver) fail(message string) error {
	if d.Err != nil && d.ErrOn == message {
		return d.Err
	}
	return nil
}

func (d *Driver) Input(_ context.Context, cfg interview.InputConfig) (string, error) {
	d.Messages = append(d.Messages, cfg.Message)
	if d.Defaults == nil {
		d.Defaults = make(map[string]string)
	}
	d.Defaults[cfg.Message] = cfg.Default
	if err := d.fail(cfg.Message); err != nil {
		return "", err
	}
	if d.inputPos >= len(d.Inputs) {
		return "", ErrUnscripted
	}
	val := d.Inputs[d.inputPos]
	d.inputPos++
	return val, nil
}

func (d *Driver) Confirm(_ context.Context, cfg interview.ConfirmConfig) (bool, error) {
	d.Messages = append(d.Messages, cfg.Message)
	if err := d.fail(cfg.Message); err != nil {
		return false, err
	}
	if d.confirmPos >= len(d.Confirms) {
		return false, ErrUnscripted
	}
	val := d.Confirms[d.confirmPos]
	d.confirmPos++
	return val, nil
}

func (d *Driver) Select(_ context.Context, cfg interview.SelectConfig) (int, error) {
	d.Messages = append(d.Messages, cfg.Message)
	if err := d.fail(cfg.Message); err != nil {
		return -1, err
	}
	if d.selectPos >= len(d.Selects) {
		return -1, ErrUnscripted
	}
	val := d.Selects[d.selectPos]
	d.selectPos++
	return val, nil
}

func (d *Driver) MultiSelect(_ context.Context, cfg interview.SelectConfig) ([]int, error) {
	d.Messages = append(d.Messages, cfg.Message)
	if err := d.fail(cfg.Message); err != nil {
		return nil, err
	}
	if d.multiPos >= len(d.Multis) {
		return nil, ErrUnscripted
	}
	val := d.Multis[d.multiPos]
	d.multiPos++
	return val, nil
}

func (d *Driver) Info(_ context.Context, msg string) error {
	d.Infos = append(d.Infos, msg)
	return nil
}

// Drained reports whether every scripted answer was consumed.
func (d *Driver) Drained() bool {
	return d.inputPos == len(d.Inputs) &&
		d.selectPos == len(d.Selects) &&
		d.multiPos == len(d.Multis) &&
		d.confirmPos == len(d.Confirms)
}
