package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
)

const (
	privateFile os.FileMode = 0o600
	privateDir  os.FileMode = 0o700
)

// PermissionsCheck makes sure the config file, which can hold
// credentials, is private to its owner, and that its directory is not
// world-writable.
type PermissionsCheck struct {
	path     string
	findings []finding
}

var (
	_ Check = (*PermissionsCheck)(nil)
	_ Fixer = (*PermissionsCheck)(nil)
)

// finding is one problem with one path. want is the mode that would
// repair it, or zero when chmod cannot help.
type finding struct {
	path    string
	problem string
	sev     Severity
	mode    os.FileMode
	want    os.FileMode
}

func NewPermissionsCheck(path string) *PermissionsCheck {
	return &PermissionsCheck{path: path}
}

func (c *PermissionsCheck) Name() string     { return "config-permissions" }
func (c *PermissionsCheck) Category() string { return "config" }

func (c *PermissionsCheck) Run() *Result {
	c.findings = nil
	res := &Result{Name: c.Name(), Category: c.Category()}

	dir := filepath.Dir(c.path)
	dirInfo, dirErr := os.Stat(dir)
	if errors.Is(dirErr, fs.ErrNotExist) {
		res.Status = SeverityInfo
		res.Message = "no config file at " + c.path
		res.FixHint = "shotgun config set <key> <value> creates it"
		return res
	}

	checked := 1
	c.inspectDir(dir, dirInfo, dirErr)
	fileInfo, fileErr := os.Stat(c.path)
	missing := errors.Is(fileErr, fs.ErrNotExist)
	if !missing {
		checked++
		c.inspectFile(c.path, fileInfo, fileErr)
	}

	if len(c.findings) == 0 {
		if missing {
			res.Status = SeverityInfo
			res.Message = "no config file at " + c.path
			res.FixHint = "shotgun config set <key> <value> creates it"
			return res
		}
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("all %d paths have valid permissions", checked)
		return res
	}

	var hints []string
	issues := make([]map[string]any, 0, len(c.findings))
	for _, f := range c.findings {
		res.Status = max(res.Status, f.sev)
		issue := map[string]any{
			"path":     f.path,
			"problem":  f.problem,
			"severity": f.sev.String(),
		}
		if f.mode != 0 {
			issue["permissions"] = octal(f.mode)
		}
		issues = append(issues, issue)
		if f.want != 0 {
			res.Fixable = true
			hints = append(hints, fmt.Sprintf("chmod %o %s", f.want, f.path))
		}
	}
	res.Message = fmt.Sprintf("found %d permission issue(s) across %d paths", len(c.findings), checked)
	res.Details = map[string]any{"checked_paths": checked, "issues": issues}
	res.FixHint = strings.Join(hints, "; ")
	return res
}

func (c *PermissionsCheck) inspectDir(path string, info os.FileInfo, err error) {
	switch {
	case err != nil:
		c.add(finding{path: path, problem: "cannot stat directory: " + err.Error(), sev: SeverityError})
	case !info.IsDir():
		c.add(finding{path: path, problem: "path exists but is not a directory", sev: SeverityError})
	case runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0:
		c.add(finding{
			path:    path,
			problem: "directory is world-writable",
			sev:     SeverityWarning,
			mode:    info.Mode().Perm(),
			want:    privateDir,
		})
	}
}

func (c *PermissionsCheck) inspectFile(path string, info os.FileInfo, err error) {
	if err != nil {
		c.add(finding{path: path, problem: "cannot stat file: " + err.Error(), sev: SeverityError})
		return
	}
	mode := info.Mode().Perm()

	fh, err := os.Open(path)
	if err != nil {
		c.add(finding{path: path, problem: "file is not readable", sev: SeverityError, mode: mode, want: privateFile})
		return
	}
	fh.Close()

	if runtime.GOOS == "windows" || mode&0o077 == 0 {
		return
	}
	f := finding{path: path, sev: SeverityWarning, mode: mode, want: privateFile}
	if mode&0o002 != 0 {
		f.problem = "file is world-writable"
		f.sev = SeverityError
	} else {
		f.problem = fmt.Sprintf("file holds credentials but has mode %s, expected %s", octal(mode), octal(privateFile))
	}
	c.add(f)
}

func (c *PermissionsCheck) add(f finding) {
	c.findings = append(c.findings, f)
}

// Fix chmods every repairable path found by the last Run.
func (c *PermissionsCheck) Fix() []Repair {
	var repairs []Repair
	for _, f := range c.findings {
		if f.want == 0 {
			continue
		}
		r := Repair{Path: f.path, Action: "chmod " + octal(f.want)}
		if err := os.Chmod(f.path, f.want); err != nil {
			r.Err = errors.Wrapf(err, "chmod %s", f.path)
		}
		repairs = append(repairs, r)
	}
	return repairs
}

func octal(m os.FileMode) string {
	return fmt.Sprintf("%04o", m.Perm())
}
