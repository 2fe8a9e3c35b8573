package project

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/status"
	"github.com/mattsolo1/grove-novel/pkg/tree"
)

// FileName is the canonical name of the project file inside a project directory.
const FileName = "nwProject.nwx"

var (
	ErrNotFound        = errors.New("project file not found")
	ErrBadFormat       = errors.New("not a novelWriterXML file version 1.0")
	ErrNoPath          = errors.New("project path not set")
	ErrDuplicateHandle = errors.New("duplicate handle")
	ErrHandleExhausted = errors.New("could not generate a unique handle")
)

// Severity is the importance of a user-facing alert.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Alerter surfaces messages to the user.
type Alerter interface {
	MakeAlert(message string, severity Severity)
}

// StatusBar shows transient status messages.
type StatusBar interface {
	SetStatus(message string)
}

// RecentRecorder remembers recently opened or saved projects.
type RecentRecorder interface {
	SetRecent(path string) error
}

// Project owns the item tree and the project meta data.
type Project struct {
	items   map[string]*tree.Item
	order   []string
	roots   []string
	trash   string
	changed bool
	orphans []string

	path    string
	name    string
	title   string
	authors []string

	statusItems *status.Registry
	importItems *status.Registry

	alerts     Alerter
	statusBar  StatusBar
	recent     RecentRecorder
	logger     *logrus.Entry
	appVersion string
	now        func() time.Time
}

// Option configures a Project.
type Option func(*Project)

func WithLogger(logger *logrus.Entry) Option {
	return func(p *Project) { p.logger = logger }
}

func WithAlerter(a Alerter) Option {
	return func(p *Project) { p.alerts = a }
}

func WithStatusBar(s StatusBar) Option {
	return func(p *Project) { p.statusBar = s }
}

func WithRecent(r RecentRecorder) Option {
	return func(p *Project) { p.recent = r }
}

// WithStatusRegistries sets the vocabularies for novel and non-novel items.
func WithStatusRegistries(statusItems, importItems *status.Registry) Option {
	return func(p *Project) {
		p.statusItems = statusItems
		p.importItems = importItems
	}
}

// WithAppVersion sets the application version written to the project file.
func WithAppVersion(v string) Option {
	return func(p *Project) { p.appVersion = v }
}

// WithClock replaces the time source used for handles and timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Project) { p.now = now }
}

// New creates an empty project.
func New(opts ...Option) *Project {
	p := &Project{
		statusItems: status.DefaultStatus(),
		importItems: status.DefaultImport(),
		appVersion:  "dev",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logrus.NewEntry(logrus.New())
	}
	p.Clear()
	return p
}

// Clear resets the tree and the meta data.
func (p *Project) Clear() {
	p.items = make(map[string]*tree.Item)
	p.order = nil
	p.roots = nil
	p.trash = ""
	p.orphans = nil
	p.path = ""
	p.name = ""
	p.title = ""
	p.authors = nil
	p.changed = false
}

func (p *Project) Path() string { return p.path }
func (p *Project) Name() string { return p.name }
func (p *Project) BookTitle() string { return p.title }
func (p *Project) Changed() bool { return p.changed }
func (p *Project) TrashHandle() string { return p.trash }

// Orphans returns the handles recovered from the project folder by the last Open.
func (p *Project) Orphans() []string {
	return append([]string(nil), p.orphans...)
}

// Authors returns a copy of the author list.
func (p *Project) Authors() []string {
	return append([]string(nil), p.authors...)
}

// Order returns a copy of the handle sequence.
func (p *Project) Order() []string {
	return append([]string(nil), p.order...)
}

// Roots returns a copy of the root handles in insertion order.
func (p *Project) Roots() []string {
	return append([]string(nil), p.roots...)
}

// Len returns the number of items in the tree.
func (p *Project) Len() int {
	return len(p.items)
}

// StatusItems returns the vocabulary for novel items.
func (p *Project) StatusItems() *status.Registry { return p.statusItems }

// ImportItems returns the vocabulary for all other items.
func (p *Project) ImportItems() *status.Registry { return p.importItems }

func (p *Project) SetProjectPath(path string) {
	p.path = path
	p.changed = true
}

func (p *Project) SetProjectName(name string) {
	p.name = strings.TrimSpace(name)
	p.changed = true
}

func (p *Project) SetBookTitle(title string) {
	p.title = strings.TrimSpace(title)
	p.changed = true
}

// SetBookAuthors replaces the author list from newline separated text.
// Blank lines are dropped.
func (p *Project) SetBookAuthors(text string) {
	p.authors = nil
	for _, author := range strings.Split(text, "\n") {
		author = strings.TrimSpace(author)
		if author == "" {
			continue
		}
		p.authors = append(p.authors, author)
	}
	p.changed = true
}

func (p *Project) alert(message string, severity Severity) {
	if p.alerts != nil {
		p.alerts.MakeAlert(message, severity)
	}
}

func (p *Project) setStatus(message string) {
	if p.statusBar != nil {
		p.statusBar.SetStatus(message)
	}
}

func (p *Project) setRecent() {
	if p.recent == nil || p.path == "" {
		return
	}
	if err := p.recent.SetRecent(p.path); err != nil {
		p.logger.WithError(err).Warn("Could not record recent project")
	}
}

func (p *Project) newItem() *tree.Item {
	return tree.NewItem(tree.Vocabulary{Novel: p.statusItems, Other: p.importItems}, p.logger)
}
