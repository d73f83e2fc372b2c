// Package submit is the form submission boundary: it checks the selection,
// validates the post against every selected platform and, only when
// everything is clean, fans it out to the platform adapters.
package submit

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/validator"
)

// Request is one submission.
type Request struct {
	Platforms   []platform.Key
	Data        form.Data
	Credentials map[platform.Key]dispatch.Credentials
}

// Outcome reports what happened to a submission. Errors is set when the
// submission was rejected before dispatch; Results otherwise.
type Outcome struct {
	ID      string            `json:"id"`
	Errors  validator.Errors  `json:"errors,omitempty"`
	Results []dispatch.Result `json:"results,omitempty"`
}

// Rejected reports whether validation stopped the submission.
func (o Outcome) Rejected() bool {
	return !o.Errors.Empty()
}

// Failed returns the results that did not succeed.
func (o Outcome) Failed() []dispatch.Result {
	var out []dispatch.Result
	for _, r := range o.Results {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}

// Err summarizes the outcome as an error: ErrValidationFailed when the
// submission was rejected, ErrPostFailed when any platform failed.
func (o Outcome) Err() error {
	if o.Rejected() {
		return errors.Wrapf(errors.ErrValidationFailed, "%d error(s)", o.Errors.Count())
	}
	if failed := o.Failed(); len(failed) > 0 {
		return errors.Wrapf(errors.ErrPostFailed, "%d of %d platform(s)", len(failed), len(o.Results))
	}
	return nil
}

// Submitter validates and dispatches posts.
type Submitter struct {
	validator *validator.Validator
	opts      []dispatch.Option
}

// New returns a Submitter. A nil validator uses validator.Default.
func New(v *validator.Validator, opts ...dispatch.Option) *Submitter {
	if v == nil {
		v = validator.Default()
	}
	return &Submitter{validator: v, opts: opts}
}

// Check runs the selection and validation steps without dispatching.
func (s *Submitter) Check(req Request) validator.Errors {
	if errs := validator.CheckSelection(req.Platforms); !errs.Empty() {
		return errs
	}
	return s.validator.Validate(req.Platforms, req.Data)
}

// Submit checks req and posts it to every selected platform. Nothing is
// sent if any platform has a validation error.
func (s *Submitter) Submit(ctx context.Context, req Request) Outcome {
	out := Outcome{ID: uuid.NewString()}
	logger := logging.FromContext(ctx).With("submission", out.ID)
	ctx = logging.NewContext(ctx, logger)

	if errs := s.Check(req); !errs.Empty() {
		logger.Info("submission rejected", "errors", errs.Count())
		out.Errors = errs
		return out
	}

	logger.Debug("dispatching", "platforms", len(req.Platforms))
	out.Results = dispatch.PostToMultiplePlatforms(ctx, req.Platforms, req.Data, credentialsFor(req), s.opts...)

	for _, r := range out.Results {
		if r.Success {
			logger.Info("posted", "platform", string(r.Platform), "post_id", r.PostID)
		} else {
			logger.Warn("post failed", "platform", string(r.Platform), "error", r.Error)
		}
	}
	return out
}

// credentialsFor returns req's credentials with the webhook URL typed into
// the form taking precedence over the configured one.
func credentialsFor(req Request) map[platform.Key]dispatch.Credentials {
	creds := maps.Clone(req.Credentials)
	if creds == nil {
		creds = make(map[platform.Key]dispatch.Credentials)
	}
	if hook := req.Data.Text("webhookUrl"); !form.Text(hook).Blank() {
		c := creds[platform.Discord]
		c.WebhookURL = hook
		creds[platform.Discord] = c
	}
	return creds
}
