package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

const bannerArt = `
  █████╗  ██████╗ █████╗ ██████╗ ███████╗███╗   ███╗██╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝████╗ ████║╚██╗ ██╔╝
 ███████║██║     ███████║██║  ██║█████╗  ██╔████╔██║ ╚████╔╝
 ██╔══██║██║     ██╔══██║██║  ██║██╔══╝  ██║╚██╔╝██║  ╚██╔╝
 ██║  ██║╚██████╗██║  ██║██████╔╝███████╗██║ ╚═╝ ██║   ██║
 ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "A C A D E M Y"

// bannerMinWidth is the narrowest terminal the full banner fits in.
const bannerMinWidth = 64

// RenderBanner returns the banner in the primary color, or a compact
// fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
