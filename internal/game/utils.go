package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// mouseButtons are the buttons polled for launches each tick.
var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func toButton(b ebiten.MouseButton) fireworks.Button {
	switch b {
	case ebiten.MouseButtonRight:
		return fireworks.ButtonSecondary
	case ebiten.MouseButtonMiddle:
		return fireworks.ButtonMiddle
	default:
		return fireworks.ButtonPrimary
	}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
