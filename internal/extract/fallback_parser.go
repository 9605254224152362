package extract

import (
	"context"
	"strings"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

// FallbackParser is a deterministic line heuristic used when no model is
// available or the model path failed. It recovers bullet lines and the
// obvious labelled sections so an offline analysis still has something to
// score, and leaves everything else at the minimal fallback record.
type FallbackParser struct{}

// ParseJob extracts what it can from raw job posting text.
func (FallbackParser) ParseJob(_ context.Context, text string) *types.JobDescription {
	jd := types.FallbackJobDescription()
	if title := firstLine(text); title != "" {
		jd.Title = title
	}
	jd.Responsibilities = bulletLines(text)
	return jd
}

// ParseResume extracts what it can from raw resume text.
func (FallbackParser) ParseResume(_ context.Context, text string) *types.ResumeProfile {
	cv := types.FallbackResumeProfile()
	if name := firstLine(text); name != "" {
		cv.Name = name
	}
	for _, line := range bulletLines(text) {
		cv.ExperienceBullets = append(cv.ExperienceBullets, types.Bullet{Text: line})
	}
	for _, name := range labelledList(text, "skills") {
		cv.Skills = append(cv.Skills, types.Skill{Name: name})
	}
	cv.Education = strings.Join(labelledList(text, "education"), "; ")
	return cv
}

// firstLine returns the first non-empty trimmed line.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// bulletLines returns the trimmed content of every bullet-prefixed line.
func bulletLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(line, prefix) {
				if content := strings.TrimSpace(strings.TrimPrefix(line, prefix)); content != "" {
					lines = append(lines, content)
				}
				break
			}
		}
	}
	return lines
}

// labelledList collects the comma-separated items of the lines under a
// section header such as "Skills:" until the next header-looking line.
func labelledList(text, label string) []string {
	items := []string{}
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if strings.HasPrefix(lower, label) {
			inSection = true
			// Header and content can share a line: "Skills: Go, SQL".
			if idx := strings.Index(line, ":"); idx >= 0 {
				items = append(items, splitItems(line[idx+1:])...)
			}
			continue
		}
		if !inSection {
			continue
		}
		if line == "" || strings.HasSuffix(line, ":") {
			inSection = false
			continue
		}
		items = append(items, splitItems(strings.TrimPrefix(strings.TrimPrefix(line, "- "), "* "))...)
	}
	return items
}

func splitItems(s string) []string {
	items := []string{}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
