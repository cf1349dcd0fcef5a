// Package pipeline reads an image, runs it through the threshold and
// morphology stages, and writes the result.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ArnaudCalmettes/morphos/imp"
	"github.com/sirupsen/logrus"
)

// Options describes one run of the pipeline.
type Options struct {
	Input      string
	Output     string // defaults to imp.OutputPath(Input)
	GrayOutput string // if set, the pre-operator image is saved there too
	Operator   string
	Threshold  imp.ThresholdMode
	Element    imp.Element
	Normalize  bool
	Invert     bool
}

// Result summarizes a completed run.
type Result struct {
	Input     string
	Output    string
	Operator  string
	Threshold string
	Cutoff    uint8
	Width     int
	Height    int
	Elapsed   time.Duration
}

// Prepare turns a decoded grayscale image into the operator's input:
// optional normalization, then thresholding. It returns the cutoff used.
func Prepare(img *image.Gray, opts Options) (*image.Gray, uint8, error) {
	if img.Bounds().Empty() {
		return nil, 0, imp.ErrEmptyImage
	}

	if opts.Normalize {
		dst := image.NewGray(img.Bounds())
		if err := imp.Normalize(img, dst); err != nil {
			return nil, 0, err
		}
		img = dst
	}

	return imp.Binarize(img, opts.Threshold)
}

// Process runs the in-memory part of the pipeline on img.
func Process(img *image.Gray, opts Options) (*image.Gray, uint8, error) {
	op, err := imp.LookupOperator(opts.Operator)
	if err != nil {
		return nil, 0, err
	}

	prepared, cutoff, err := Prepare(img, opts)
	if err != nil {
		return nil, 0, err
	}
	if opts.Invert {
		prepared = imp.Complement(prepared)
	}
	return op(prepared, opts.Element), cutoff, nil
}

// Run executes a full pipeline: decode, process, encode.
func Run(ctx context.Context, opts Options, log logrus.FieldLogger) (*Result, error) {
	start := time.Now()

	op, err := imp.LookupOperator(opts.Operator)
	if err != nil {
		return nil, err
	}
	if opts.Output == "" {
		opts.Output = imp.OutputPath(opts.Input)
	}
	log = log.WithFields(logrus.Fields{
		"input":    opts.Input,
		"operator": opts.Operator,
	})

	src, err := imp.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", opts.Input, err)
	}
	gray := imp.ToGray(src)
	log.WithFields(logrus.Fields{
		"width":  gray.Bounds().Dx(),
		"height": gray.Bounds().Dy(),
	}).Debug("image decoded")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prepared, cutoff, err := Prepare(gray, opts)
	if err != nil {
		return nil, fmt.Errorf("couldn't prepare %s: %w", opts.Input, err)
	}
	if opts.Threshold != imp.ThresholdNone {
		log.WithFields(logrus.Fields{
			"mode":   opts.Threshold,
			"cutoff": cutoff,
		}).Debug("image thresholded")
	}

	if opts.GrayOutput != "" {
		if err := imp.Save(opts.GrayOutput, prepared); err != nil {
			return nil, fmt.Errorf("couldn't save %s: %w", opts.GrayOutput, err)
		}
		log.WithField("path", opts.GrayOutput).Debug("intermediate image saved")
	}
	if opts.Invert {
		prepared = imp.Complement(prepared)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := op(prepared, opts.Element)
	log.WithField("element", opts.Element).Debug("operator applied")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := imp.Save(opts.Output, out); err != nil {
		return nil, fmt.Errorf("couldn't save %s: %w", opts.Output, err)
	}

	res := &Result{
		Input:     opts.Input,
		Output:    opts.Output,
		Operator:  opts.Operator,
		Threshold: opts.Threshold.String(),
		Cutoff:    cutoff,
		Width:     out.Bounds().Dx(),
		Height:    out.Bounds().Dy(),
		Elapsed:   time.Since(start),
	}
	log.WithFields(logrus.Fields{
		"output":     res.Output,
		"elapsed_ms": res.Elapsed.Milliseconds(),
	}).Info("image processed")
	return res, nil
}
