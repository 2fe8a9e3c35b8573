package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/recent"
	"github.com/mattsolo1/grove-novel/pkg/status"
)

// Service is the core project service used by the command line
type Service struct {
	Recent *recent.Registry
	Host   *ConsoleHost
	Config *Config
	Logger *logrus.Entry

	statusItems *status.Registry
	importItems *status.Registry
}

// Config holds service configuration
type Config struct {
	DataDir    string
	StatusFile string
	MaxRecent  int
	AppVersion string
}

// New creates a new project service
func New(config *Config, host *ConsoleHost, logger *logrus.Entry) (*Service, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	reg, err := recent.NewRegistry(config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("create recent registry: %w", err)
	}
	reg.SetMaxEntries(config.MaxRecent)

	statusItems, importItems := status.DefaultStatus(), status.DefaultImport()
	if config.StatusFile != "" {
		statusItems, importItems, err = status.LoadFile(config.StatusFile)
		if err != nil {
			reg.Close()
			return nil, err
		}
	}

	return &Service{
		Recent:      reg,
		Host:        host,
		Config:      config,
		Logger:      logger,
		statusItems: statusItems,
		importItems: importItems,
	}, nil
}

// Close releases the recent projects database
func (s *Service) Close() error {
	return s.Recent.Close()
}

func (s *Service) newProject() *project.Project {
	opts := []project.Option{
		project.WithLogger(s.Logger),
		project.WithRecent(s.Recent),
		project.WithStatusRegistries(s.statusItems, s.importItems),
		project.WithAppVersion(s.Config.AppVersion),
	}
	if s.Host != nil {
		opts = append(opts, project.WithAlerter(s.Host), project.WithStatusBar(s.Host))
	}
	return project.New(opts...)
}

// OpenProject loads the project at path (a directory or a project file).
func (s *Service) OpenProject(path string) (*project.Project, error) {
	p := s.newProject()
	if err := p.Open(path); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProject creates a project with the default layout in dir and saves it.
// It refuses to overwrite an existing project file.
func (s *Service) CreateProject(dir string, options ...CreateOption) (*project.Project, error) {
	opts := &createOptions{}
	for _, opt := range options {
		opt(opts)
	}

	if _, err := os.Stat(filepath.Join(dir, project.FileName)); err == nil {
		return nil, fmt.Errorf("project already exists in %s", dir)
	}

	p := s.newProject()
	if err := p.NewProject(); err != nil {
		return nil, fmt.Errorf("create project tree: %w", err)
	}
	if opts.trash {
		if _, err := p.AddTrash(); err != nil {
			return nil, fmt.Errorf("add trash: %w", err)
		}
	}

	name := opts.name
	if name == "" {
		name = filepath.Base(dir)
	}
	p.SetProjectPath(dir)
	p.SetProjectName(name)
	p.SetBookTitle(opts.title)
	p.SetBookAuthors(opts.authors)

	if err := p.Save(); err != nil {
		return nil, err
	}
	return p, nil
}

// RecentProjects lists recently used projects, most recent first.
func (s *Service) RecentProjects(limit int) ([]*recent.Project, error) {
	return s.Recent.List(limit)
}

type createOptions struct {
	name    string
	title   string
	authors string
	trash   bool
}

// CreateOption configures CreateProject
type CreateOption func(*createOptions)

// WithName sets the working name; defaults to the directory name.
func WithName(name string) CreateOption {
	return func(o *createOptions) { o.name = name }
}

// WithTitle sets the book title.
func WithTitle(title string) CreateOption {
	return func(o *createOptions) { o.title = title }
}

// WithAuthors sets the authors as newline separated text.
func WithAuthors(authors string) CreateOption {
	return func(o *createOptions) { o.authors = authors }
}

// WithTrash adds a trash root to the new project.
func WithTrash() CreateOption {
	return func(o *createOptions) { o.trash = true }
}
