// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/slides/internal/ui"

// HeaderHeight is the single title line at the top of the screen.
const HeaderHeight = 1

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// Rect is a cell rectangle with a 0-based origin.
type Rect struct {
	X, Y, W, H int
}

// Row returns the 1-based terminal row of the rectangle's top edge, as used
// by cursor positioning escapes.
func (r Rect) Row() int { return r.Y + 1 }

// Col returns the 1-based terminal column of the rectangle's left edge.
func (r Rect) Col() int { return r.X + 1 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Opts are the layout inputs besides the window size.
type Opts struct {
	PhotoListVisible  bool
	NotificationCount int
	CaptionHeight     int // lines reserved under the image
}

// Layout is the position of every screen region.
type Layout struct {
	Header        Rect
	Slide         Rect // bordered slide panel
	Image         Rect // photo area inside the slide panel
	Caption       Rect // caption lines inside the slide panel
	PhotoList     Rect // zero when hidden
	Notifications Rect
	Status        Rect // status line + progress bar
}

// PhotoListShown reports whether the photo list got any room.
func (l Layout) PhotoListShown() bool { return !l.PhotoList.Empty() }

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}

// ContentHeight is the height left for the slide and the photo list.
func ContentHeight(windowHeight int, o Opts) int {
	return max(windowHeight-HeaderHeight-ui.StatusBarHeight-NotificationHeight(o.NotificationCount), 0)
}

// ShowsPhotoList reports whether a photo list fits beside a usable slide.
func ShowsPhotoList(windowWidth int, o Opts) bool {
	return o.PhotoListVisible && windowWidth-ui.PhotoListWidth >= ui.MinSlideWidth
}

// Compute places every region for a window of the given size.
func Compute(width, height int, o Opts) Layout {
	var l Layout
	width, height = max(width, 0), max(height, 0)

	l.Header = Rect{W: width, H: min(HeaderHeight, height)}
	content := ContentHeight(height, o)

	slideW := width
	if ShowsPhotoList(width, o) {
		slideW = width - ui.PhotoListWidth
		l.PhotoList = Rect{X: slideW, Y: HeaderHeight, W: ui.PhotoListWidth, H: content}
	}
	l.Slide = Rect{Y: HeaderHeight, W: slideW, H: content}

	// Inside the border, one column of padding on each side
	innerW := max(slideW-4, 0)
	innerH := max(content-ui.BorderHeight, 0)
	capH := min(max(o.CaptionHeight, 0), innerH)
	imgH := innerH - capH
	if capH > 0 && imgH > 0 {
		imgH-- // blank line between image and caption
	}
	l.Image = Rect{X: 2, Y: HeaderHeight + 1, W: innerW, H: max(imgH, 0)}
	l.Caption = Rect{X: 2, Y: HeaderHeight + 1 + innerH - capH, W: innerW, H: capH}

	notifH := NotificationHeight(o.NotificationCount)
	l.Notifications = Rect{Y: HeaderHeight + content, W: width, H: notifH}
	l.Status = Rect{Y: HeaderHeight + content + notifH, W: width, H: min(ui.StatusBarHeight, max(height-HeaderHeight, 0))}
	return l
}
