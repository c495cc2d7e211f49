package config

import (
	"time"
)

const (
	DefaultContactEndpoint = "https://api.web3forms.com/submit"
	DefaultMCPHost         = "localhost"
	DefaultMCPPort         = 8090
	DefaultRepository      = "marios-dev/marios"
)

// GetDefaultConfig returns the built-in desktop: the terminal, about,
// projects, skills and contact windows with the terminal shown at startup.
func GetDefaultConfig() MariosConfig {
	return MariosConfig{
		Desktop: DesktopSettings{
			DefaultWindow:    "terminal-main",
			MobileBreakpoint: 72,
			StatusBarHeight:  1,
			TaskbarHeight:    1,
			ZBaseline:        50,
		},
		Windows: defaultWindows(),
		Keys: KeySettings{
			Cycle:    []string{"alt+tab", "f6"},
			Minimize: []string{"ctrl+m", "f9"},
		},
		Boot: BootSettings{
			Duration: 5 * time.Second,
		},
		Contact: ContactSettings{
			Endpoint: DefaultContactEndpoint,
			Email:    "contact@example.com",
			Timeout:  10 * time.Second,
			Retries:  2,
		},
		MCP: MCPSettings{
			Host: DefaultMCPHost,
			Port: DefaultMCPPort,
		},
		Updates: UpdateSettings{
			Repository: DefaultRepository,
		},
	}
}

func defaultWindows() []WindowDefinition {
	return []WindowDefinition{
		{
			ID:       "terminal-main",
			Title:    "mari@terminal: ~",
			Icon:     ">_",
			Launcher: "terminal",
			X:        4, Y: 3, Width: 64, Height: 20,
			Content: `mari@marios:~$ whoami
marios - software engineer

mari@marios:~$ cat mission.txt
Building reliable systems and sharp interfaces.

mari@marios:~$ ls ~/apps
about  projects  skills  contact

Tip: alt+tab (or f6) cycles windows, ctrl+m (or f9) minimizes.`,
			Prompt: "mari@marios:~$",
		},
		{
			ID:    "about",
			Title: "about.txt",
			Icon:  "[i]",
			X:     12, Y: 5, Width: 56, Height: 18,
			Content: `[USER_PROFILE]
Name:     Marios
Role:     Software Engineer
Location: Earth, probably

Backend and systems engineer who likes small tools,
clean protocols and terminals that look like movies.`,
		},
		{
			ID:    "projects",
			Title: "projects/",
			Icon:  "[P]",
			X:     20, Y: 6, Width: 70, Height: 22,
			Tabs: []TabDefinition{
				{Name: "marios", Content: "A hacker OS portfolio that runs in your terminal.\nWindow manager, drag, mobile fullscreen mode."},
				{Name: "netwatch", Content: "Network telemetry collector.\nStreams flow records into a columnar store."},
				{Name: "tinykv", Content: "Embedded key/value store.\nLog-structured, crash-safe, single file."},
			},
		},
		{
			ID:    "skills",
			Title: "skills.db",
			Icon:  "[S]",
			X:     30, Y: 4, Width: 50, Height: 18,
			Content: `LANGUAGES   Go, TypeScript, Python, SQL
SYSTEMS     Linux, containers, networking
DATA        PostgreSQL, Redis, Kafka
PRACTICES   testing, observability, CI/CD`,
		},
		{
			ID:    "contact",
			Title: "secure_channel",
			Icon:  "[@]",
			X:     40, Y: 7, Width: 56, Height: 20,
			Form:  true,
			Content: "Open a secure channel. Messages are transmitted over HTTPS.",
		},
	}
}
