package ambient

import (
	"math/rand"
	"time"
)

const (
	// TypingInterval is how often the terminal considers typing a command.
	TypingInterval = 8 * time.Second
	// KeystrokeInterval is the delay between typed characters.
	KeystrokeInterval = 80 * time.Millisecond
	typingChance      = 0.3
)

var terminalCommands = []string{
	"ls -la /home/marios/projects/",
	`cat /proc/cpuinfo | grep "model name"`,
	"ps aux | grep mari",
	"systemctl status portfolio.service",
	"tail -f /var/log/mari.log",
	"whoami && id",
	"uname -a",
}

// Typist animates commands being typed at the terminal prompt.
type Typist struct {
	rng     *rand.Rand
	next    int
	command string
	typed   int
}

// NewTypist creates an idle typist.
func NewTypist(rng *rand.Rand) *Typist {
	return &Typist{rng: rng}
}

// Tick maybe starts typing the next command. It reports whether it did.
func (t *Typist) Tick() bool {
	if t.Typing() || t.rng.Float64() <= 1-typingChance {
		return false
	}
	t.command = terminalCommands[t.next%len(terminalCommands)]
	t.next++
	t.typed = 0
	return true
}

// Keystroke types one more character. When the command is complete the
// typist returns to idle and Keystroke reports false.
func (t *Typist) Keystroke() bool {
	if !t.Typing() {
		return false
	}
	if t.typed >= len(t.command) {
		t.command = ""
		t.typed = 0
		return false
	}
	t.typed++
	return true
}

// Typing reports whether a command is being typed.
func (t *Typist) Typing() bool {
	return t.command != ""
}

// Line returns the partially typed command.
func (t *Typist) Line() string {
	return t.command[:t.typed]
}
