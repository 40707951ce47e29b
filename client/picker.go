package client

import (
	"context"
	"fmt"

	"github.com/zllovesuki/ProperResolutions/system/display"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Picker presents the supported resolutions as a list and returns the one the user selects
type Picker struct {
	source display.Source

	app   *tview.Application
	frame *tview.Frame
	list  *tview.List

	modes    []display.Mode
	selected *display.Mode
}

func NewPicker(source display.Source) *Picker {
	return &Picker{
		source: source,
		app:    tview.NewApplication(),
		list:   tview.NewList(),
	}
}

func (p *Picker) load() error {
	modes, err := p.source.SupportedResolutions()
	if err != nil {
		return err
	}
	p.modes = modes

	p.list.Clear()
	for i := range p.modes {
		main, secondary := itemText(p.modes[i])
		p.list.AddItem(main, secondary, 0, nil)
	}
	p.frame.Clear().
		AddText(fmt.Sprintf(" %d modes via %s ", len(modes), p.source.Name()), true, tview.AlignLeft, tcell.ColorGreen).
		AddText(" Enter: select   r: reload   q/Esc: quit ", false, tview.AlignLeft, tcell.ColorWhite)
	return nil
}

func (p *Picker) setup() error {
	p.list.ShowSecondaryText(true).
		SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
			m := p.modes[index]
			p.selected = &m
			p.app.Stop()
		}).
		SetDoneFunc(func() {
			p.app.Stop()
		})
	p.list.Box.SetBorder(true).SetTitle(" Supported Resolutions ")

	p.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		switch event.Rune() {
		case 'q':
			p.app.Stop()
			return nil
		case 'r':
			if err := p.load(); err != nil {
				p.frame.AddText(fmt.Sprintf(" reload failed: %s ", err), false, tview.AlignRight, tcell.ColorRed)
			}
			return nil
		}
		return event
	})

	p.frame = tview.NewFrame(p.list)
	if err := p.load(); err != nil {
		return err
	}

	p.app.SetRoot(p.frame, true)
	return nil
}

// Serve runs the interface until the user picks a mode, quits, or haltCtx is cancelled.
// ok is false when nothing was selected.
func (p *Picker) Serve(haltCtx context.Context) (mode display.Mode, ok bool, err error) {
	if err := p.setup(); err != nil {
		return display.Mode{}, false, err
	}

	done := make(chan error, 1)
	go func() {
		done <- p.app.Run()
	}()

	select {
	case err = <-done:
	case <-haltCtx.Done():
		p.app.Stop()
		err = <-done
	}
	if err != nil {
		return display.Mode{}, false, err
	}
	if p.selected == nil {
		return display.Mode{}, false, nil
	}
	return *p.selected, true, nil
}

func itemText(m display.Mode) (main string, secondary string) {
	w, h := aspectRatio(m.Width, m.Height)
	return fmt.Sprintf("%dx%d", m.Width, m.Height), fmt.Sprintf("%d Hz, %d:%d", m.RefreshRate, w, h)
}

func aspectRatio(width, height uint32) (uint32, uint32) {
	d := gcd(width, height)
	if d == 0 {
		return width, height
	}
	w, h := width/d, height/d
	// 1366x768 and friends are marketed as 16:9
	if w == 683 && h == 384 {
		return 16, 9
	}
	return w, h
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
