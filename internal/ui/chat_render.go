package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/teacherbob/teacherbob/internal/catalog"
	"github.com/teacherbob/teacherbob/internal/chat"
	"github.com/teacherbob/teacherbob/internal/selection"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	starItalic        = regexp.MustCompile(`(^|[^*])\*([^*\s][^*]*)\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^\pL\pN_])_([^_]+)_`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	numberedPattern   = regexp.MustCompile(`^(\d{1,3})\. (.*)$`)
)

// highlightCode applies syntax highlighting to code using chroma and the
// active theme's code style.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Protect code spans from the other patterns
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		codeSpans = append(codeSpans, MarkdownCodeStyle.Render(code))
		return fmt.Sprintf("\x00CODE%d\x00", len(codeSpans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})
	line = starItalic.ReplaceAllStringFunc(line, func(match string) string {
		parts := starItalic.FindStringSubmatch(match)
		return parts[1] + MarkdownItalicStyle.Render(parts[2])
	})
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		parts := underscoreItalic.FindStringSubmatch(match)
		return parts[1] + MarkdownItalicStyle.Render(parts[2])
	})
	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + MarkdownLinkStyle.Render(parts[2]) + ")"
	})

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, " -")
}

// indentContinuation prefixes every line but the first with indent.
func indentContinuation(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, "### "):
		return MarkdownH3Style.Render(strings.TrimPrefix(trimmed, "### "))
	case strings.HasPrefix(trimmed, "## "):
		return MarkdownH2Style.Render(strings.TrimPrefix(trimmed, "## "))
	case strings.HasPrefix(trimmed, "# "):
		return MarkdownH1Style.Render(strings.TrimPrefix(trimmed, "# "))
	case trimmed == "---" || trimmed == "***" || trimmed == "___":
		return MarkdownHorizontalSep.Render(strings.Repeat("─", min(width, 32)))
	case strings.HasPrefix(trimmed, "> "):
		content := strings.TrimPrefix(trimmed, "> ")
		return MarkdownBlockquote.Render(wrapText(renderInlineMarkdown(content), width-4))
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		bullet := MarkdownListBullet.Render("•")
		wrapped := wrapText(renderInlineMarkdown(trimmed[2:]), width-4)
		return "  " + bullet + " " + indentContinuation(wrapped, "    ")
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := MarkdownListBullet.Render(m[1] + ".")
		indent := strings.Repeat(" ", len(m[1])+4)
		wrapped := wrapText(renderInlineMarkdown(m[2]), width-len(indent))
		return "  " + number + " " + indentContinuation(wrapped, indent)
	}

	return wrapText(renderInlineMarkdown(line), width)
}

// renderMarkdown renders markdown content with syntax-highlighted code blocks
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlock strings.Builder

	flushCode := func() {
		result.WriteString(MarkdownCodeBlockBox.Render(highlightCode(codeBlock.String(), codeBlockLang)))
		result.WriteString("\n")
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				codeBlock.Reset()
			} else {
				inCodeBlock = false
				flushCode()
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlock.Len() > 0 {
				codeBlock.WriteString("\n")
			}
			codeBlock.WriteString(line)
			continue
		}

		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// Unterminated block: show what we have
	if inCodeBlock {
		flushCode()
	}

	return strings.TrimRight(result.String(), "\n")
}

// ChatHeadline is the line above the conversation describing what the
// student is studying.
func ChatHeadline(sel selection.Selection) string {
	if !sel.HasSubject() {
		return "Escolha uma matéria para começar!"
	}
	name := catalog.SubjectName(sel.Subject)
	if sel.HasTopic() {
		return "Ajudando com " + name + " - " + sel.Topic
	}
	return "Pronto para " + name
}

// renderBadge draws a colored pill with the given text.
func renderBadge(text string, c catalog.Color) string {
	return BadgeStyle.Background(SubjectColor(c)).Render(text)
}

// renderSelectionBadges draws the subject and topic badges of sel.
func renderSelectionBadges(sel selection.Selection) string {
	subj, ok := catalog.SubjectByID(sel.Subject)
	if !ok {
		return ""
	}
	badges := renderBadge(subj.Name, subj.Color)
	if sel.HasTopic() {
		badges += " " + renderBadge(sel.Topic, catalog.NeutralColor)
	}
	return badges
}

// formatClock formats a message time in the local zone.
func formatClock(t time.Time) string {
	return t.Local().Format("15:04")
}

// renderAttachment formats one attachment as "📎 name (size)".
func renderAttachment(a chat.Attachment) string {
	return ChatAttachmentStyle.Render(fmt.Sprintf("📎 %s (%s)", a.Name, humanize.Bytes(uint64(max(a.Size, 0)))))
}

// renderMessage draws one message: role label and time, attachments, then the
// content. Assistant replies are rendered as markdown; student text is only
// wrapped.
func renderMessage(msg chat.Message, width int) string {
	var sb strings.Builder

	labelStyle := ChatUserStyle
	if msg.Role == chat.RoleAssistant {
		labelStyle = ChatAssistantStyle
	}
	sb.WriteString(labelStyle.Render(msg.Role.Label()))
	if !msg.Timestamp.IsZero() {
		sb.WriteString(ChatTimestampStyle.Render("  " + formatClock(msg.Timestamp)))
	}
	sb.WriteString("\n")

	for _, f := range msg.Files {
		sb.WriteString(ansi.Truncate(renderAttachment(f), width, "…"))
		sb.WriteString("\n")
	}

	content := strings.TrimSpace(msg.Content)
	if msg.Role == chat.RoleAssistant {
		sb.WriteString(renderMarkdown(content, width))
	} else if content != "" {
		sb.WriteString(ChatMessageStyle.Render(wrapText(content, width)))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderAttachmentBar lists the attachments waiting to be sent.
func renderAttachmentBar(pending []chat.Attachment, width int) string {
	if len(pending) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pending))
	for _, a := range pending {
		parts = append(parts, renderAttachment(a))
	}
	bar := strings.Join(parts, lipgloss.NewStyle().Foreground(ColorBorder).Render("  ·  "))
	return ansi.Truncate(bar, width, "…")
}
