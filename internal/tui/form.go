package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/pkg/domain"
)

type formField int

const (
	fieldAuthor formField = iota
	fieldText
	fieldSubmit
	numFields
)

// formModel is the compose form: author, text and the submit control.
// Neither input limit is a hard cap on what Submit accepts.
type formModel struct {
	author string
	text   string
	focus  formField
	button cooldown.ButtonState
}

func newFormModel() formModel {
	return formModel{
		focus:  fieldText,
		button: cooldown.StateFor(0),
	}
}

func (f formModel) next() formModel {
	f.focus = (f.focus + 1) % numFields
	return f
}

func (f formModel) prev() formModel {
	f.focus = (f.focus - 1 + numFields) % numFields
	return f
}

// edit applies a keystroke to the focused input.
func (f formModel) edit(key string) formModel {
	switch f.focus {
	case fieldAuthor:
		f.author = editRune(f.author, key, domain.MaxAuthorLen)
	case fieldText:
		f.text = editRune(f.text, key, domain.MaxTextLen)
	}
	return f
}

func (f formModel) clear() formModel {
	f.author = ""
	f.text = ""
	return f
}

func (f formModel) textLen() int {
	return utf8.RuneCountInString(f.text)
}

// charCount renders "<len>/500", switching color past the warning mark.
func (f formModel) charCount() string {
	n := f.textLen()
	label := fmt.Sprintf("%d/%d", n, domain.MaxTextLen)
	if n > domain.WarnTextLen {
		return charWarnStyle.Render(label)
	}
	return charCountStyle.Render(label)
}

func (f formModel) renderButton() string {
	label := f.button.Label
	switch f.button.Phase {
	case cooldown.Locked:
		return buttonLockedStyle.Render(label)
	case cooldown.Posted:
		return buttonPostedStyle.Render(label)
	}
	if f.focus == fieldSubmit {
		return buttonReadyStyle.Underline(true).Render(label)
	}
	return buttonReadyStyle.Render(label)
}

func (f formModel) View(focused bool, cursorOn bool) string {
	var b strings.Builder

	row := func(field formField, label, value, placeholder string) {
		active := focused && f.focus == field
		prompt := metaStyle.Render("  ")
		labelStyle := metaStyle
		if active {
			prompt = inputPromptStyle.Render("> ")
			labelStyle = selectedStyle
		}
		var shown string
		switch {
		case value == "" && !active:
			shown = inputPlaceholderStyle.Render(placeholder)
		case active:
			shown = normalStyle.Render(value)
			if cursorOn {
				shown += accentStyle.Render("█")
			}
		default:
			shown = dimStyle.Render(value)
		}
		fmt.Fprintf(&b, " %s%s %s\n", prompt, labelStyle.Render(fmt.Sprintf("%-7s", label)), shown)
	}

	row(fieldAuthor, "name", f.author, "Anonymous")
	row(fieldText, "comment", f.text, "share your thoughts...")

	prompt := "  "
	if focused && f.focus == fieldSubmit {
		prompt = inputPromptStyle.Render("> ")
	}
	fmt.Fprintf(&b, " %s%s  %s\n", prompt, f.renderButton(), f.charCount())
	return b.String()
}
