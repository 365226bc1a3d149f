package export

import (
	"fmt"
	"strings"

	"scriptviral/internal/domain"
)

// optionLabels lists the clipboard labels in render order. Parsing walks the
// same order, so multi-line field values survive the round trip.
var optionLabels = []string{
	"Durasi: ",
	"Judul: ",
	"Hook: ",
	"Script: ",
	"CTA: ",
	"Caption Singkat: ",
	"Hashtag: ",
}

// OptionText renders one option as the labeled, newline-joined text placed on
// the clipboard.
func OptionText(opt domain.ScriptOption) string {
	return fmt.Sprintf("Durasi: %s detik\nJudul: %s\nHook: %s\nScript: %s\nCTA: %s\nCaption Singkat: %s\nHashtag: %s",
		opt.Durasi, opt.Judul, opt.Hook, opt.Script, opt.CTA, opt.Caption, opt.Hashtags)
}

// ParseOptionText recovers an option from its clipboard rendering. Labels are
// matched in order; lines that do not open the next expected label belong to
// the current field's value.
func ParseOptionText(text string) (domain.ScriptOption, error) {
	var opt domain.ScriptOption
	values := make([]string, len(optionLabels))
	current := -1
	for _, line := range strings.Split(text, "\n") {
		if current+1 < len(optionLabels) && strings.HasPrefix(line, optionLabels[current+1]) {
			current++
			values[current] = strings.TrimPrefix(line, optionLabels[current])
			continue
		}
		if current < 0 {
			return opt, fmt.Errorf("parse option text: expected leading %q line: %w", strings.TrimSpace(optionLabels[0]), domain.ErrInvalidRequest)
		}
		values[current] += "\n" + line
	}
	if current != len(optionLabels)-1 {
		return opt, fmt.Errorf("parse option text: found %d of %d labeled fields: %w", current+1, len(optionLabels), domain.ErrInvalidRequest)
	}
	opt.Durasi = strings.TrimSuffix(values[0], " detik")
	opt.Judul = values[1]
	opt.Hook = values[2]
	opt.Script = values[3]
	opt.CTA = values[4]
	opt.Caption = values[5]
	opt.Hashtags = values[6]
	return opt, nil
}
