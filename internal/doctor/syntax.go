package doctor

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/pkg/fileutil"
)

// ConfigSyntaxCheck parses the config file and validates its settings.
// A missing file is fine: defaults and environment credentials apply.
type ConfigSyntaxCheck struct {
	path string
}

var _ Check = (*ConfigSyntaxCheck)(nil)

func NewConfigSyntaxCheck(path string) *ConfigSyntaxCheck {
	return &ConfigSyntaxCheck{path: path}
}

func (c *ConfigSyntaxCheck) Name() string     { return "config-syntax" }
func (c *ConfigSyntaxCheck) Category() string { return "config" }

func (c *ConfigSyntaxCheck) Run() *Result {
	res := &Result{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Status = SeverityInfo
		res.Message = "no config file; using defaults and environment credentials"
		return res
	}
	if err != nil {
		res.Status = SeverityError
		res.Message = "read error: " + err.Error()
		return res
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		res.Status = SeverityError
		res.Message = describeYAMLError(err)
		res.FixHint = "fix the YAML in " + c.path
		return res
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		problems := make([]string, 0, len(errs))
		for _, e := range errs {
			problems = append(problems, e.Error())
		}
		res.Status = SeverityError
		res.Message = fmt.Sprintf("%d invalid setting(s)", len(errs))
		res.Details["problems"] = problems
		res.FixHint = "review settings with: shotgun config list"
		return res
	}

	res.Status = SeverityPass
	res.Message = "config file is valid"
	return res
}

// describeYAMLError keeps yaml.v3's line numbers but drops its prefix.
func describeYAMLError(err error) string {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		return "YAML type error: " + strings.Join(te.Errors, "; ")
	}
	return "YAML syntax error: " + strings.TrimPrefix(err.Error(), "yaml: ")
}
