// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/3 of total width)
	SidebarWidthRatio = 3

	// SidebarMinWidth and SidebarMaxWidth clamp the sidebar in wide mode
	SidebarMinWidth = 30
	SidebarMaxWidth = 42

	// CompactWidth is the terminal width below which the sidebar is hidden
	// and only shown as an overlay
	CompactWidth = 90

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes the layout
	// is computed for; smaller terminals are clipped
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the schedule editor and the file picker
	ModalWidthWide = 76

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 32

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 40
)
