package supervisor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zllovesuki/ProperResolutions/report"
	"github.com/zllovesuki/ProperResolutions/system/display"
	"github.com/zllovesuki/ProperResolutions/util"

	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"
)

// scriptedSource returns its results in order, repeating the last one
type scriptedSource struct {
	mu      sync.Mutex
	results [][]display.Mode
	err     error
	calls   int
}

func (s *scriptedSource) Name() string { return "scripted" }

func (s *scriptedSource) SupportedResolutions() ([]display.Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	i := s.calls - 1
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i], nil
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var _ display.Source = &scriptedSource{}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var (
	fullHD = display.Mode{Width: 1920, Height: 1080, RefreshRate: 60}
	uhd30  = display.Mode{Width: 3840, Height: 2160, RefreshRate: 30}
	uhd60  = display.Mode{Width: 3840, Height: 2160, RefreshRate: 60}
)

func TestNewReporterValidation(t *testing.T) {
	_, err := NewReporter(ReporterConfig{Output: &bytes.Buffer{}})
	require.Error(t, err)

	_, err = NewReporter(ReporterConfig{Source: &scriptedSource{}})
	require.Error(t, err)

	_, err = NewReporter(ReporterConfig{Source: &scriptedSource{}, Output: &bytes.Buffer{}, Interval: -time.Second})
	require.Error(t, err)

	r, err := NewReporter(ReporterConfig{Source: &scriptedSource{}, Output: &bytes.Buffer{}})
	require.NoError(t, err)
	require.Equal(t, report.Text, r.Format)
}

func TestReporterReport(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{results: [][]display.Mode{{fullHD, uhd30, uhd60}}}
	r, err := NewReporter(ReporterConfig{Source: src, Output: &out})
	require.NoError(t, err)

	require.NoError(t, r.Report())
	require.Equal(t, "1920x1080 : 60\n3840x2160 : 30\n3840x2160 : 60\n", out.String())
}

func TestReporterReportError(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{err: errors.New("driver went away")}
	r, err := NewReporter(ReporterConfig{Source: src, Output: &out})
	require.NoError(t, err)

	err = r.Report()
	require.Error(t, err)
	require.Contains(t, err.Error(), "driver went away")
	require.Empty(t, out.String())
}

func TestReporterServeOnce(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{results: [][]display.Mode{{fullHD}}}
	r, err := NewReporter(ReporterConfig{Source: src, Output: &out})
	require.NoError(t, err)

	err = r.Serve(context.Background())
	require.ErrorIs(t, err, suture.ErrDoNotRestart)
	require.Equal(t, "1920x1080 : 60\n", out.String())
}

func TestReporterServeReportsChanges(t *testing.T) {
	out := &syncBuffer{}
	notifications := make(chan util.Notification, 10)
	src := &scriptedSource{results: [][]display.Mode{
		{fullHD, uhd60},
		{fullHD, uhd60},
		{fullHD, uhd30, uhd60},
	}}
	r, err := NewReporter(ReporterConfig{
		Source:   src,
		Output:   out,
		Interval: time.Millisecond * 10,
		Notifier: notifications,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- r.Serve(ctx)
	}()

	select {
	case n := <-notifications:
		require.Equal(t, "1 modes added, 0 removed", n.Message)
	case <-time.After(time.Second * 2):
		t.Fatal("no change notification received")
	}

	// let a few more unchanged rounds pass
	for src.Calls() < 5 {
		time.Sleep(time.Millisecond * 5)
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}

	// initial report plus exactly one rewrite after the change
	require.Equal(t, 2, strings.Count(out.String(), "1920x1080 : 60\n"))
	require.Equal(t, 1, strings.Count(out.String(), "3840x2160 : 30\n"))
	require.Empty(t, notifications)
}

func TestReporterServeDoesNotRepeatStart(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{results: [][]display.Mode{{fullHD}}}
	r, err := NewReporter(ReporterConfig{Source: src, Output: &out})
	require.NoError(t, err)

	r.Serve(context.Background())
	r.Serve(context.Background())
	require.Equal(t, 1, src.Calls())
}
