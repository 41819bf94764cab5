// cavegen-server starts an SSH server where every connection gets its own
// interactive cave preview. Build:
//
//	go build -o cavegen-server ./cmd/server
//
// Usage:
//
//	./cavegen-server [--port 2222] [--key server_host_key] [--config cave.yaml] [--theme ascii]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"cavegen/internal/generate"
	"cavegen/internal/history"
	"cavegen/internal/preview"
	"cavegen/internal/render"
	"cavegen/internal/settings"
	internalssh "cavegen/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	configFile := flag.String("config", "", "YAML generation settings (defaults when empty)")
	themeName := flag.String("theme", "ascii", "Tile theme: ascii, blocks or emoji")
	record := flag.Bool("history", false, "Append every generated seed to the history file")
	flag.Parse()

	st := settings.Default()
	if *configFile != "" {
		var err error
		if st, err = settings.Load(*configFile); err != nil {
			log.Fatalf("load settings: %v", err)
		}
	}

	h := &handler{
		settings: st,
		theme:    render.ThemeByName(*themeName),
		record:   *record,
		logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("cavegen SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// ─── sessions ───────────────────────────────────────────────────────────────

// handler starts one independent preview per SSH connection.
type handler struct {
	settings *settings.Settings
	theme    render.Theme
	record   bool
	logger   *slog.Logger
}

// allowedTerms lists the TERM values accepted from clients. Anything else
// falls back to xterm-256color so a client cannot point terminfo lookups
// at arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// maxNameBytes bounds the user name shown in logs and on screen.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The cave preview requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	if allowedTerms[pty.Term] {
		term = pty.Term
	}

	user := sanitizeName(s.User())
	logger := h.logger.With("user", user, "remote", s.RemoteAddr().String())

	// Create a tcell screen backed by this SSH session.
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	logger.Info("preview session started", "term", term)
	sess := preview.New(screen, h.settings.GenerateConfig(logger), h.theme, logger)
	if h.record {
		sess.OnGenerate = func(cfg *generate.Config, res *generate.Result) {
			history.Save(history.NewEntry(cfg, res), logger)
		}
	}
	sess.Run()
	logger.Info("preview session ended", "seed", sess.Config().Seed)
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "cavegen server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
