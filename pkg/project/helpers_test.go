package project

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type alert struct {
	message  string
	severity Severity
}

type fakeHost struct {
	alerts   []alert
	statuses []string
	recent   []string
}

func (h *fakeHost) MakeAlert(message string, severity Severity) {
	h.alerts = append(h.alerts, alert{message, severity})
}

func (h *fakeHost) SetStatus(message string) {
	h.statuses = append(h.statuses, message)
}

func (h *fakeHost) SetRecent(path string) error {
	h.recent = append(h.recent, path)
	return nil
}

func newTestProject(t *testing.T, opts ...Option) (*Project, *fakeHost, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	host := &fakeHost{}
	base := []Option{
		WithLogger(logrus.NewEntry(logger)),
		WithAlerter(host),
		WithStatusBar(host),
		WithRecent(host),
		WithAppVersion("0.1.0-test"),
	}
	return New(append(base, opts...)...), host, hook
}

func fixedClock() func() time.Time {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}
