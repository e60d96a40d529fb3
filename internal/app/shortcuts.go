package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/clipboard"
	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "e", "ctrl+o")
	DisplayKey      string                              // Display name in help (e.g., "Ctrl+O"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Must not be in chat focus
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navegação"
	CategorySchedule   = "Horário"
	CategoryChat       = "Conversa"
	CategoryGeneral    = "Geral"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategorySchedule,
	CategoryChat,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Alternar entre matérias e conversa",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:         keys.CtrlB,
		DisplayKey:  "Ctrl+B",
		Description: "Mostrar ou esconder as matérias",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleOverlay,
		Condition:   func(m *Model) bool { return m.compact() },
	},

	// Schedule
	{
		Key:             "e",
		Description:     "Editar horário",
		Category:        CategorySchedule,
		RequiresSidebar: true,
		Handler:         shortcutEditSchedule,
		Condition:       func(m *Model) bool { return m.sidebar.Tab() == ui.TabSchedule },
	},

	// Chat
	{
		Key:         keys.CtrlO,
		DisplayKey:  "Ctrl+O",
		Description: "Anexar PDF",
		Category:    CategoryChat,
		Handler:     shortcutAttachFile,
	},
	{
		Key:         keys.CtrlX,
		DisplayKey:  "Ctrl+X",
		Description: "Remover o último anexo",
		Category:    CategoryChat,
		Handler:     shortcutRemoveAttachment,
		Condition:   func(m *Model) bool { return len(m.session.Pending()) > 0 },
	},
	{
		Key:         keys.CtrlY,
		DisplayKey:  "Ctrl+Y",
		Description: "Copiar a última resposta",
		Category:    CategoryChat,
		Handler:     shortcutCopyReply,
		Condition: func(m *Model) bool {
			_, ok := m.session.LastReply()
			return ok
		},
	},

	// General
	{
		Key:             ",",
		Description:     "Configurações",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutSettings,
	},
	{
		Key:             "q",
		Description:     "Sair",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Mostrar atalhos",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shortcuts shown in help but handled elsewhere
// (e.g., navigation keys handled by the focused panel).
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ ou j/k", Description: "Mover o cursor", Category: CategoryNavigation},
	{DisplayKey: "←/→", Description: "Matérias ou tópicos", Category: CategoryNavigation},
	{DisplayKey: "[/]", Description: "Trocar de aba", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Selecionar matéria ou tópico", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Fechar o painel de matérias", Category: CategoryNavigation},

	{DisplayKey: "Enter", Description: "Enviar pergunta", Category: CategoryChat},
	{DisplayKey: "Shift+Enter", Description: "Nova linha", Category: CategoryChat},
	{DisplayKey: "PgUp/PgDn", Description: "Rolar a conversa", Category: CategoryChat},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus == FocusChat {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks the guards (RequiresSidebar, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false // Guard failed, let key propagate to textarea
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("guard failed", "key", key, "focus", m.focus.String())
			return m, nil, false
		}
		log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	// Display-only entries are always shown for context
	for _, s := range displayOnly {
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  s.DisplayKey,
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutToggleOverlay(m *Model) (tea.Model, tea.Cmd) {
	if m.overlayOpen {
		m.closeOverlay()
	} else {
		m.openOverlay()
	}
	return m, nil
}

func shortcutEditSchedule(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewScheduleEditorState(m.sidebar.Schedule()))
	return m, nil
}

func shortcutAttachFile(m *Model) (tea.Model, tea.Cmd) {
	state, cmd := ui.NewAttachFileState(m.startDir)
	m.modal.Show(state)
	return m, cmd
}

func shortcutRemoveAttachment(m *Model) (tea.Model, tea.Cmd) {
	pending := m.session.Pending()
	if len(pending) == 0 {
		return m, nil
	}
	m.session.RemoveAttachment(len(pending) - 1)
	m.chat.SetPending(m.session.Pending())
	return m, m.ShowFlashInfo(pending[len(pending)-1].Name + " removido")
}

func shortcutCopyReply(m *Model) (tea.Model, tea.Cmd) {
	reply, ok := m.session.LastReply()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteText(reply); err != nil {
		logger.WithComponent("shortcuts").Warn("copy failed", "error", err)
		return m, m.ShowFlashError("Não foi possível copiar a resposta")
	}
	return m, m.ShowFlashSuccess("Resposta copiada")
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	displayNames := make([]string, len(names))
	for i, name := range names {
		themes[i] = string(name)
		displayNames[i] = ui.GetTheme(name).Name
	}
	m.modal.Show(ui.NewSettingsState(themes, displayNames, string(ui.CurrentThemeName()),
		m.config.GetNotificationsEnabled(), m.config.Endpoint))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(append([]Shortcut(nil), ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(ui.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
