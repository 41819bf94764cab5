package ssh

import (
	"testing"

	gossh "github.com/gliderlabs/ssh"
)

func TestWindowSizeFollowsResize(t *testing.T) {
	tty := &SessionTty{window: gossh.Window{Width: 80, Height: 24}}
	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v, %v", ws, err)
	}

	calls := 0
	tty.cb = func() { calls++ }
	tty.resize(gossh.Window{Width: 120, Height: 40})

	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %+v, want 120x40", ws)
	}
	if calls != 1 {
		t.Errorf("resize callback ran %d times, want 1", calls)
	}
}

func TestResizeWithoutCallback(t *testing.T) {
	tty := &SessionTty{}
	tty.resize(gossh.Window{Width: 10, Height: 5})
	if ws, _ := tty.WindowSize(); ws.Width != 10 {
		t.Errorf("width = %d, want 10", ws.Width)
	}
}
