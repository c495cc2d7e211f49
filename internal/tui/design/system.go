package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units in cells.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Minimum terminal size the desktop renders at.
	MinWidth  = 40
	MinHeight = 12
)

// Color Palette - phosphor greens on black, with readable light variants.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#007A33",
		Dark:  "#00FF41",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#2F6B45",
		Dark:  "#008F11",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#22D3EE",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#F4FFF6",
		Dark:  "#000000",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0A0F0A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#E3F2E7",
		Dark:  "#0F1F12",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#9CC5A8",
		Dark:  "#1F4D2A",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#007A33",
		Dark:  "#00FF41",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#0B2912",
		Dark:  "#C8FFD4",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#3D6B4A",
		Dark:  "#5FAF6F",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CB8A3",
		Dark:  "#1E3B24",
	}
)

// Role names the visual role of a cell. The desktop canvas stores roles
// rather than styles so that runs of equal cells can be rendered together.
type Role uint8

const (
	RoleDesktop Role = iota
	RoleRain
	RoleStatusBar
	RoleStatusAccent
	RoleTaskbar
	RoleLauncher
	RoleLauncherActive
	RoleLauncherDimmed
	RoleWindowBorder
	RoleWindowBorderFocus
	RoleWindowTitle
	RoleWindowTitleFocus
	RoleWindowControl
	RoleWindowBody
	RoleWindowBodyMuted
	RoleTab
	RoleTabActive
	RoleInput
	RoleInputFocus
	RolePanel
	RolePanelTitle
	RoleGauge
	RoleToastInfo
	RoleToastSuccess
	RoleToastWarning
	RoleToastError
	RoleHome
	RoleHomeTitle
)

// Base Styles - Foundation for all components
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	TextInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BaseStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText)

	SurfaceStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorPrimary)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorPrimary)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorderFocus).
					Background(ColorSurface).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorPrimary)

	BootStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	BootTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)

var roleStyles = map[Role]lipgloss.Style{
	RoleDesktop:           BaseStyle,
	RoleRain:              BaseStyle.Foreground(ColorTextMuted),
	RoleStatusBar:         StatusBarStyle,
	RoleStatusAccent:      StatusBarStyle.Bold(true),
	RoleTaskbar:           StatusBarStyle.Foreground(ColorTextSecondary),
	RoleLauncher:          StatusBarStyle.Foreground(ColorText),
	RoleLauncherActive:    StatusBarStyle.Foreground(ColorBackground).Background(ColorPrimary).Bold(true),
	RoleLauncherDimmed:    StatusBarStyle.Foreground(ColorTextSecondary).Faint(true),
	RoleWindowBorder:      SurfaceStyle.Foreground(ColorBorder),
	RoleWindowBorderFocus: SurfaceStyle.Foreground(ColorBorderFocus),
	RoleWindowTitle:       SurfaceStyle.Foreground(ColorTextSecondary),
	RoleWindowTitleFocus:  SurfaceStyle.Foreground(ColorPrimary).Bold(true),
	RoleWindowControl:     SurfaceStyle.Foreground(ColorWarning),
	RoleWindowBody:        SurfaceStyle,
	RoleWindowBodyMuted:   SurfaceStyle.Foreground(ColorTextSecondary),
	RoleTab:               SurfaceStyle.Foreground(ColorTextSecondary),
	RoleTabActive:         SurfaceStyle.Foreground(ColorBackground).Background(ColorPrimary).Bold(true),
	RoleInput:             SurfaceStyle.Foreground(ColorText).Underline(true),
	RoleInputFocus:        SurfaceStyle.Foreground(ColorPrimary).Underline(true).Bold(true),
	RolePanel:             SurfaceStyle.Foreground(ColorTextSecondary),
	RolePanelTitle:        SurfaceStyle.Foreground(ColorPrimary).Bold(true),
	RoleGauge:             SurfaceStyle.Foreground(ColorPrimary),
	RoleToastInfo:         lipgloss.NewStyle().Background(ColorInfo).Foreground(ColorBackground),
	RoleToastSuccess:      lipgloss.NewStyle().Background(ColorSuccess).Foreground(ColorBackground),
	RoleToastWarning:      lipgloss.NewStyle().Background(ColorWarning).Foreground(ColorBackground),
	RoleToastError:        lipgloss.NewStyle().Background(ColorError).Foreground(ColorBackground).Bold(true),
	RoleHome:              BaseStyle.Foreground(ColorTextSecondary),
	RoleHomeTitle:         BaseStyle.Foreground(ColorPrimary).Bold(true),
}

// Style returns the style for a role.
func Style(r Role) lipgloss.Style {
	if s, ok := roleStyles[r]; ok {
		return s
	}
	return BaseStyle
}
