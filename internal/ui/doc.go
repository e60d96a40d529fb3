// Package ui provides the user interface components for the Teacher Bob TUI.
//
// # Layout System
//
// In wide terminals the sidebar sits left of the chat:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│   Sidebar       │         Chat Panel                │
//	│   Matérias /    │         messages                  │
//	│   Horário       │         attachments + input       │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below CompactWidth columns the chat takes the whole width and the sidebar is
// drawn as an overlay on demand. ViewContext owns these calculations.
//
// # Components
//
// Header shows the app title and the current subject and topic over a gradient.
// Footer shows the shortcuts valid in the current context. Sidebar lists
// subjects, topics, a month calendar and the weekly schedule. Chat renders the
// conversation and owns the input textarea. Modal hosts the dialogs from the
// modals package.
//
// # Styles
//
// Styles are package variables rebuilt by SetTheme from the active Theme, so
// components must read them at render time rather than caching them.
package ui
